package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostFile(t *testing.T) {
	raw := []byte(`---
title: "  2024 Hatchback Guide  "
excerpt: Small cars, big choices
status: Published
tags: [hatchback, buying]
published_date: 2024-03-01
read_time: 6 min read
---

Pick the one that fits your garage.
`)

	input, err := parsePostFile("posts/hatchbacks.md", raw)
	require.NoError(t, err)

	assert.Equal(t, "2024 Hatchback Guide", input.Title)
	assert.Equal(t, entity.StatusPublished, input.Status)
	assert.Equal(t, []string{"hatchback", "buying"}, input.Tags)
	assert.Equal(t, "Pick the one that fits your garage.", input.Content)
	assert.Equal(t, defaultAuthorName, input.Author)
	require.NotNil(t, input.ReadTime)
	assert.Equal(t, "6 min read", *input.ReadTime)
	require.NotNil(t, input.PublishedDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *input.PublishedDate)
}

func TestParsePostFile_TitleFromFilename(t *testing.T) {
	input, err := parsePostFile("drafts/ev-charging.md", []byte("Just a body"))
	require.NoError(t, err)
	assert.Equal(t, "ev-charging", input.Title)
	assert.Equal(t, "Just a body", input.Content)
}

func TestParsePostFile_BadDate(t *testing.T) {
	_, err := parsePostFile("x.md", []byte("---\ntitle: X\npublished_date: next week\n---\nbody"))
	assert.Error(t, err)
}

type stubPosts struct {
	posts []*entity.Post
	err   error
}

func (s stubPosts) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return s.posts, s.err
}

type recordingBlog struct {
	usecase.BlogUseCase
	created []entity.CreatePostInput
}

func (r *recordingBlog) CreatePost(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	r.created = append(r.created, input)
	return &entity.Post{ID: int64(len(r.created)), Title: input.Title, Slug: input.Slug}, nil
}

func TestImportPosts_SkipsExistingSlugs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\ntitle: Old News\nslug: old-news\n---\nold"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("---\ntitle: Fresh Take\nslug: fresh-take\n---\nnew"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	blog := &recordingBlog{}
	existing := stubPosts{posts: []*entity.Post{{ID: 1, Slug: "old-news"}}}

	require.NoError(t, importPosts(context.Background(), existing, blog, dir, logger.NewNop()))
	require.Len(t, blog.created, 1)
	assert.Equal(t, "Fresh Take", blog.created[0].Title)
}

func TestImportPosts_ListFailure(t *testing.T) {
	err := importPosts(context.Background(), stubPosts{err: errors.New("db down")}, &recordingBlog{}, t.TempDir(), logger.NewNop())
	assert.Error(t, err)
}
