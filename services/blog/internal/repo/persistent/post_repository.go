package persistent

import (
	"context"
	"errors"
	"strings"
	"time"

	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"
	"makemodelyear/services/blog/internal/repo"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repo.PostStore {
	return &postRepository{db: db}
}

func (r *postRepository) GetAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, repo.RemoteError("get_all", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) GetPublished(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.published(ctx).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, repo.RemoteError("get_published", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repo.RemoteError("get_by_id", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.published(ctx).Where("slug = ?", slug).First(&postModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repo.RemoteError("get_by_slug", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	var postModels []model.PostModel
	err := r.published(ctx).
		Where("(title ILIKE ? OR excerpt ILIKE ? OR content ILIKE ?)", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, repo.RemoteError("search", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) GetByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.published(ctx).
		Where("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE lower(trim(t)) = lower(?))", strings.TrimSpace(tag)).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, repo.RemoteError("get_by_tag", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) GetRelated(ctx context.Context, postID int64, limit int) ([]*entity.Post, error) {
	source, err := r.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return []*entity.Post{}, nil
	}

	var postModels []model.PostModel
	err = r.published(ctx).
		Where("id <> ?", postID).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, repo.RemoteError("get_related", err)
	}
	return content.RankRelated(source, toPostEntities(postModels), limit), nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, author string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("lower(author) = lower(?)", strings.TrimSpace(author)).
		Count(&count).Error
	if err != nil {
		return 0, repo.RemoteError("count_by_author", err)
	}
	return count, nil
}

func (r *postRepository) Create(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	post := content.NewPost(input, time.Now().UTC())

	slug, err := content.UniqueSlug(post.Slug, r.slugTaken(ctx, 0))
	if err != nil {
		return nil, repo.RemoteError("create", err)
	}
	post.Slug = slug

	postModel := ToPostModel(post)
	postModel.ID = 0
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return nil, repo.RemoteError("create", err)
	}
	return ToPostEntity(postModel), nil
}

// Update holds the row lock for the whole read-merge-write, so a concurrent
// IncrementViews waits for it instead of being overwritten.
func (r *postRepository) Update(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error) {
	var post *entity.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postModel model.PostModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&postModel).Error; err != nil {
			return err
		}

		post = ToPostEntity(&postModel)
		if content.ApplyPostUpdate(post, input, time.Now().UTC()) {
			slug, err := content.UniqueSlug(post.Slug, slugTakenIn(tx, id))
			if err != nil {
				return err
			}
			post.Slug = slug
		}

		updated := ToPostModel(post)
		if err := tx.Omit("views", "created_at").Save(updated).Error; err != nil {
			return err
		}
		post = ToPostEntity(updated)
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repo.RemoteError("update", err)
	}
	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return false, repo.RemoteError("delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) IncrementViews(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return repo.RemoteError("increment_views", err)
	}
	return nil
}

// DashboardStats runs the four aggregates concurrently; any failure fails the whole call.
func (r *postRepository) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var total, published, views, authors int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return r.db.WithContext(egCtx).Model(&model.PostModel{}).Count(&total).Error
	})
	eg.Go(func() error {
		return r.db.WithContext(egCtx).Model(&model.PostModel{}).Where("published = ?", true).Count(&published).Error
	})
	eg.Go(func() error {
		return r.db.WithContext(egCtx).Model(&model.PostModel{}).Select("COALESCE(SUM(views), 0)").Scan(&views).Error
	})
	eg.Go(func() error {
		return r.db.WithContext(egCtx).Model(&model.PostModel{}).
			Where("author IS NOT NULL AND author <> ''").
			Distinct("author").
			Count(&authors).Error
	})
	if err := eg.Wait(); err != nil {
		return nil, repo.RemoteError("dashboard_stats", err)
	}

	return &entity.DashboardStats{
		TotalPosts:     total,
		PublishedPosts: published,
		DraftPosts:     total - published,
		TotalViews:     views,
		UniqueAuthors:  authors,
	}, nil
}

func (r *postRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("published = ?", true)
}

func (r *postRepository) slugTaken(ctx context.Context, excludeID int64) func(string) (bool, error) {
	return slugTakenIn(r.db.WithContext(ctx), excludeID)
}

func slugTakenIn(db *gorm.DB, excludeID int64) func(string) (bool, error) {
	return func(slug string) (bool, error) {
		var count int64
		err := db.Model(&model.PostModel{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count).Error
		return count > 0, err
	}
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
