package local

import (
	"context"
	"sort"
	"strings"
	"time"

	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type postStore struct {
	posts *collection[entity.Post]
	now   func() time.Time
}

// NewPostStore keeps posts under PostsNamespace. A nil backend yields a store
// whose every call fails with repo.ErrLocalUnavailable.
func NewPostStore(backend Backend) repo.PostStore {
	return &postStore{
		posts: newCollection[entity.Post](backend, PostsNamespace),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *postStore) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return s.list(ctx, "get_all", func(*entity.Post) bool { return true })
}

func (s *postStore) GetPublished(ctx context.Context) ([]*entity.Post, error) {
	return s.list(ctx, "get_published", isPublished)
}

func (s *postStore) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	return s.find(ctx, "get_by_id", func(p *entity.Post) bool { return p.ID == id })
}

func (s *postStore) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return s.find(ctx, "get_by_slug", func(p *entity.Post) bool { return p.Published && p.Slug == slug })
}

func (s *postStore) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	return s.list(ctx, "search", func(p *entity.Post) bool {
		return p.Published && content.PostMatches(p, query)
	})
}

func (s *postStore) GetByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	return s.list(ctx, "get_by_tag", func(p *entity.Post) bool {
		return p.Published && content.HasTag(p, tag)
	})
}

func (s *postStore) GetRelated(ctx context.Context, postID int64, limit int) ([]*entity.Post, error) {
	all, err := s.list(ctx, "get_related", func(*entity.Post) bool { return true })
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == postID {
			return content.RankRelated(p, all, limit), nil
		}
	}
	return []*entity.Post{}, nil
}

func (s *postStore) CountByAuthor(ctx context.Context, author string) (int64, error) {
	want := strings.ToLower(strings.TrimSpace(author))
	matches, err := s.list(ctx, "count_by_author", func(p *entity.Post) bool {
		return strings.ToLower(strings.TrimSpace(p.Author)) == want
	})
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

func (s *postStore) Create(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	var created entity.Post
	err := s.posts.modify(ctx, "create", func(posts []entity.Post) ([]entity.Post, bool, error) {
		post := content.NewPost(input, s.now())
		post.ID = content.NextID(postIDs(posts))
		post.Slug = uniquePostSlug(posts, post.Slug, 0)

		created = *post
		return append(posts, *post), true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *postStore) Update(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post
	err := s.posts.modify(ctx, "update", func(posts []entity.Post) ([]entity.Post, bool, error) {
		for i := range posts {
			if posts[i].ID != id {
				continue
			}
			post := posts[i]
			if content.ApplyPostUpdate(&post, input, s.now()) {
				post.Slug = uniquePostSlug(posts, post.Slug, id)
			}
			posts[i] = post
			updated = &post
			return posts, true, nil
		}
		return posts, false, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *postStore) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := s.posts.modify(ctx, "delete", func(posts []entity.Post) ([]entity.Post, bool, error) {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, deleted, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *postStore) IncrementViews(ctx context.Context, id int64) error {
	return s.posts.modify(ctx, "increment_views", func(posts []entity.Post) ([]entity.Post, bool, error) {
		for i := range posts {
			if posts[i].ID == id {
				posts[i].Views++
				return posts, true, nil
			}
		}
		return posts, false, nil
	})
}

// DashboardStats is computed in a single pass over the collection.
func (s *postStore) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	posts, err := s.posts.read(ctx, "dashboard_stats")
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{}
	authors := make(map[string]struct{})
	for _, p := range posts {
		stats.TotalPosts++
		if p.Published {
			stats.PublishedPosts++
		}
		stats.TotalViews += p.Views
		if p.Author != "" {
			authors[p.Author] = struct{}{}
		}
	}
	stats.DraftPosts = stats.TotalPosts - stats.PublishedPosts
	stats.UniqueAuthors = int64(len(authors))
	return stats, nil
}

// list returns the matching posts newest first.
func (s *postStore) list(ctx context.Context, op string, keep func(*entity.Post) bool) ([]*entity.Post, error) {
	posts, err := s.posts.read(ctx, op)
	if err != nil {
		return nil, err
	}

	out := []*entity.Post{}
	for i := range posts {
		if keep(&posts[i]) {
			out = append(out, &posts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *postStore) find(ctx context.Context, op string, match func(*entity.Post) bool) (*entity.Post, error) {
	posts, err := s.posts.read(ctx, op)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if match(&posts[i]) {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func isPublished(p *entity.Post) bool {
	return p.Published
}

func postIDs(posts []entity.Post) []int64 {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func uniquePostSlug(posts []entity.Post, base string, excludeID int64) string {
	// The predicate never fails, so neither does UniqueSlug.
	slug, _ := content.UniqueSlug(base, func(candidate string) (bool, error) {
		for _, p := range posts {
			if p.ID != excludeID && p.Slug == candidate {
				return true, nil
			}
		}
		return false, nil
	})
	return slug
}
