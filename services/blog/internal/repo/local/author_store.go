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

type authorStore struct {
	authors *collection[entity.Author]
	now     func() time.Time
}

func NewAuthorStore(backend Backend) repo.AuthorStore {
	return &authorStore{
		authors: newCollection[entity.Author](backend, AuthorsNamespace),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *authorStore) List(ctx context.Context, activeOnly bool) ([]*entity.Author, error) {
	authors, err := s.authors.read(ctx, "list_authors")
	if err != nil {
		return nil, err
	}

	out := []*entity.Author{}
	for i := range authors {
		if activeOnly && !authors[i].IsActive {
			continue
		}
		out = append(out, &authors[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *authorStore) GetByID(ctx context.Context, id int64) (*entity.Author, error) {
	return s.find(ctx, "get_author", func(a *entity.Author) bool { return a.ID == id })
}

func (s *authorStore) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	want := strings.TrimSpace(name)
	return s.find(ctx, "get_author_by_name", func(a *entity.Author) bool {
		return strings.EqualFold(strings.TrimSpace(a.Name), want)
	})
}

func (s *authorStore) Create(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error) {
	var created entity.Author
	err := s.authors.modify(ctx, "create_author", func(authors []entity.Author) ([]entity.Author, bool, error) {
		ids := make([]int64, len(authors))
		for i, a := range authors {
			ids[i] = a.ID
		}

		now := s.now()
		created = entity.Author{
			ID:          content.NextID(ids),
			Name:        strings.TrimSpace(input.Name),
			Bio:         input.Bio,
			AvatarURL:   input.AvatarURL,
			TwitterURL:  input.TwitterURL,
			LinkedinURL: input.LinkedinURL,
			FacebookURL: input.FacebookURL,
			IsActive:    input.IsActive == nil || *input.IsActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return append(authors, created), true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *authorStore) Update(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error) {
	return s.update(ctx, "update_author", id, func(a *entity.Author) {
		if input.Name != nil {
			a.Name = strings.TrimSpace(*input.Name)
		}
		if input.Bio != nil {
			a.Bio = input.Bio
		}
		if input.AvatarURL != nil {
			a.AvatarURL = input.AvatarURL
		}
		if input.TwitterURL != nil {
			a.TwitterURL = input.TwitterURL
		}
		if input.LinkedinURL != nil {
			a.LinkedinURL = input.LinkedinURL
		}
		if input.FacebookURL != nil {
			a.FacebookURL = input.FacebookURL
		}
		if input.IsActive != nil {
			a.IsActive = *input.IsActive
		}
	})
}

func (s *authorStore) SetActive(ctx context.Context, id int64, active bool) (*entity.Author, error) {
	return s.update(ctx, "set_author_active", id, func(a *entity.Author) {
		a.IsActive = active
	})
}

func (s *authorStore) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := s.authors.modify(ctx, "delete_author", func(authors []entity.Author) ([]entity.Author, bool, error) {
		kept := authors[:0]
		for _, a := range authors {
			if a.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, a)
		}
		return kept, deleted, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *authorStore) update(ctx context.Context, op string, id int64, apply func(*entity.Author)) (*entity.Author, error) {
	var updated *entity.Author
	err := s.authors.modify(ctx, op, func(authors []entity.Author) ([]entity.Author, bool, error) {
		for i := range authors {
			if authors[i].ID != id {
				continue
			}
			author := authors[i]
			apply(&author)
			author.UpdatedAt = s.now()
			authors[i] = author
			updated = &author
			return authors, true, nil
		}
		return authors, false, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *authorStore) find(ctx context.Context, op string, match func(*entity.Author) bool) (*entity.Author, error) {
	authors, err := s.authors.read(ctx, op)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		if match(&authors[i]) {
			return &authors[i], nil
		}
	}
	return nil, nil
}
