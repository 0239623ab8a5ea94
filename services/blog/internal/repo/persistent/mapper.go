package persistent

import (
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"

	"github.com/lib/pq"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Post{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Excerpt:        m.Excerpt,
		Content:        m.Content,
		Author:         deref(m.Author),
		Status:         entity.PostStatus(m.Status),
		Published:      m.Published,
		PublishedDate:  m.PublishedDate,
		ReadTime:       m.ReadTime,
		SeoTitle:       deref(m.SeoTitle),
		SeoDescription: deref(m.SeoDescription),
		SeoSchema:      entity.JSONLD(deref(m.SeoSchema)),
		BlogImage:      m.BlogImage,
		Tags:           tags,
		Views:          m.Views,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:             e.ID,
		Title:          e.Title,
		Slug:           e.Slug,
		Excerpt:        e.Excerpt,
		Content:        e.Content,
		Author:         nullable(e.Author),
		Status:         string(e.Status),
		Published:      e.Published,
		PublishedDate:  e.PublishedDate,
		ReadTime:       e.ReadTime,
		SeoTitle:       nullable(e.SeoTitle),
		SeoDescription: nullable(e.SeoDescription),
		SeoSchema:      nullable(string(e.SeoSchema)),
		BlogImage:      e.BlogImage,
		Tags:           pq.StringArray(e.Tags),
		Views:          e.Views,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToAuthorEntity(m *model.AuthorModel) *entity.Author {
	if m == nil {
		return nil
	}

	return &entity.Author{
		ID:          m.ID,
		Name:        m.Name,
		Bio:         m.Bio,
		AvatarURL:   m.AvatarURL,
		TwitterURL:  m.TwitterURL,
		LinkedinURL: m.LinkedinURL,
		FacebookURL: m.FacebookURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToAuthorModel(e *entity.Author) *model.AuthorModel {
	if e == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:          e.ID,
		Name:        e.Name,
		Bio:         e.Bio,
		AvatarURL:   e.AvatarURL,
		TwitterURL:  e.TwitterURL,
		LinkedinURL: e.LinkedinURL,
		FacebookURL: e.FacebookURL,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToSettingRow falls back to the key's known type when data_type is blank.
func ToSettingRow(m *model.SettingModel, knownType entity.DataType) entity.SettingRow {
	row := entity.SettingRow{
		Key:       m.Key,
		Category:  entity.SettingCategory(m.Category),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Value != nil {
		dataType := entity.DataType(m.DataType)
		if dataType == "" {
			dataType = knownType
		}
		row.Value = entity.ParseSettingValue(dataType, *m.Value)
	}
	return row
}

func ToSettingModel(row entity.SettingRow) *model.SettingModel {
	m := &model.SettingModel{
		Key:       row.Key,
		Category:  string(row.Category),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Value != nil {
		raw := row.Value.Raw()
		m.Value = &raw
		m.DataType = string(row.Value.DataType())
	}
	return m
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		FullName:    m.FullName,
		AvatarURL:   m.AvatarURL,
		Role:        entity.UserRole(m.Role),
		IsActive:    m.IsActive,
		IsVerified:  m.IsVerified,
		LastLoginAt: m.LastLoginAt,
		LoginCount:  m.LoginCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
