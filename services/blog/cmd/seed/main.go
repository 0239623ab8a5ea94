package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"makemodelyear/pkg/config"
	"makemodelyear/pkg/database"
	"makemodelyear/pkg/jwt"
	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"
	"makemodelyear/services/blog/internal/repo/persistent"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/adrg/frontmatter"
	"gorm.io/gorm"
)

const defaultAuthorName = "Make Model Year Team"

func main() {
	var postsDir, adminEmail string
	flag.StringVar(&postsDir, "posts", "", "Directory of markdown posts with YAML front matter")
	flag.StringVar(&adminEmail, "admin-email", "", "Promote (or create) this user as admin and print a development token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seedDatabase(ctx, db, cfg, postsDir, adminEmail, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config, postsDir, adminEmail string, log *logger.Logger) error {
	settingStore := persistent.NewSettingRepository(db)
	settingsUseCase := usecase.NewSettingsUseCase(settingStore, log)

	rows, err := settingStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if len(rows) == 0 {
		if err := settingsUseCase.Save(ctx, entity.DefaultSiteSettings()); err != nil {
			return err
		}
		log.Info("Created default settings (%d keys)", len(content.SettingKeys()))
	} else {
		log.Info("Settings already present, skipping")
	}

	authors := persistent.NewAuthorRepository(db)
	existing, err := authors.GetByName(ctx, defaultAuthorName)
	if err != nil {
		return fmt.Errorf("failed to look up default author: %w", err)
	}
	if existing == nil {
		if _, err := usecase.NewAuthorUseCase(authors, nil, log).CreateAuthor(ctx, entity.CreateAuthorInput{Name: defaultAuthorName}); err != nil {
			return err
		}
		log.Info("Created author: %s", defaultAuthorName)
	}

	if postsDir != "" {
		posts := persistent.NewPostRepository(db)
		blogUseCase := usecase.NewBlogUseCase(posts, settingsUseCase, cfg.SiteURL, log)
		if err := importPosts(ctx, posts, blogUseCase, postsDir, log); err != nil {
			return err
		}
	}

	if adminEmail != "" {
		return seedAdmin(db, cfg, adminEmail, log)
	}
	return nil
}

type postFrontMatter struct {
	Title         string   `yaml:"title"`
	Slug          string   `yaml:"slug"`
	Excerpt       string   `yaml:"excerpt"`
	Author        string   `yaml:"author"`
	Status        string   `yaml:"status"`
	Tags          []string `yaml:"tags"`
	PublishedDate string   `yaml:"published_date"`
	ReadTime      string   `yaml:"read_time"`
	BlogImage     string   `yaml:"blog_image"`
}

// parsePostFile turns one markdown file into a create request. The body
// below the front matter becomes the post content.
func parsePostFile(name string, raw []byte) (entity.CreatePostInput, error) {
	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return entity.CreatePostInput{}, fmt.Errorf("failed to parse front matter in %s: %w", name, err)
	}

	input := entity.CreatePostInput{
		Title:   strings.TrimSpace(fm.Title),
		Slug:    fm.Slug,
		Excerpt: strings.TrimSpace(fm.Excerpt),
		Content: strings.TrimSpace(string(body)),
		Author:  fm.Author,
		Status:  entity.PostStatus(strings.ToLower(strings.TrimSpace(fm.Status))),
		Tags:    fm.Tags,
	}
	if input.Title == "" {
		input.Title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if input.Author == "" {
		input.Author = defaultAuthorName
	}
	if fm.ReadTime != "" {
		input.ReadTime = &fm.ReadTime
	}
	if fm.BlogImage != "" {
		input.BlogImage = &fm.BlogImage
	}
	if fm.PublishedDate != "" {
		published, err := parseDate(fm.PublishedDate)
		if err != nil {
			return entity.CreatePostInput{}, fmt.Errorf("invalid published_date in %s: %w", name, err)
		}
		input.PublishedDate = &published
	}
	return input, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("expected YYYY-MM-DD or RFC3339")
}

type postLister interface {
	GetAll(ctx context.Context) ([]*entity.Post, error)
}

// importPosts skips files whose slug is already taken, so re-running is safe.
func importPosts(ctx context.Context, posts postLister, blogUseCase usecase.BlogUseCase, dir string, log *logger.Logger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(files)

	current, err := posts.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing posts: %w", err)
	}
	taken := make(map[string]bool, len(current))
	for _, p := range current {
		taken[p.Slug] = true
	}

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			log.Error("Failed to read %s: %v", file, err)
			continue
		}
		input, err := parsePostFile(file, raw)
		if err != nil {
			log.Error("%v", err)
			continue
		}

		slug := content.Slugify(input.Slug)
		if slug == "" {
			slug = content.Slugify(input.Title)
		}
		if taken[slug] {
			log.Info("Post %s already exists, skipping", slug)
			continue
		}

		post, err := blogUseCase.CreatePost(ctx, input)
		if err != nil {
			log.Error("Failed to import %s: %v", file, err)
			continue
		}
		taken[post.Slug] = true
		log.Info("Imported post: %s (%s)", post.Title, post.Slug)
	}
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config, email string, log *logger.Logger) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.UserModel
	err := db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.UserModel{Email: email, Role: string(entity.RoleAdmin), IsActive: true, IsVerified: true}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Info("Created admin user: %s", email)
	case err != nil:
		return fmt.Errorf("failed to look up admin user: %w", err)
	default:
		if err := db.Model(&user).Updates(map[string]interface{}{"role": string(entity.RoleAdmin), "is_active": true}).Error; err != nil {
			return fmt.Errorf("failed to promote admin user: %w", err)
		}
		log.Info("Promoted %s to admin", email)
	}

	if cfg.AuthJWTSecret == "" {
		log.Warn("AUTH_JWT_SECRET is empty, not issuing a development token")
		return nil
	}
	token, err := jwt.NewService(cfg.AuthJWTSecret).GenerateToken(user.ID, user.Email, "authenticated")
	if err != nil {
		return err
	}
	fmt.Printf("Admin token for %s:\n%s\n", email, token)
	return nil
}
