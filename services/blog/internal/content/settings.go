package content

import (
	"makemodelyear/services/blog/internal/entity"
)

type settingField struct {
	key      string
	category entity.SettingCategory
	dataType entity.DataType
	str      func(*entity.SiteSettings) *string
	flag     func(*entity.SiteSettings) *bool
}

func stringField(key string, category entity.SettingCategory, f func(*entity.SiteSettings) *string) settingField {
	return settingField{key: key, category: category, dataType: entity.DataTypeString, str: f}
}

func boolField(key string, category entity.SettingCategory, f func(*entity.SiteSettings) *bool) settingField {
	return settingField{key: key, category: category, dataType: entity.DataTypeBoolean, flag: f}
}

// settingFields is the fixed key <-> field table, in persisted order.
var settingFields = []settingField{
	stringField("site_name", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SiteName }),
	stringField("site_description", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SiteDescription }),
	stringField("site_url", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SiteURL }),
	stringField("contact_email", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.ContactEmail }),
	stringField("social_twitter", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SocialTwitter }),
	stringField("social_facebook", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SocialFacebook }),
	stringField("social_linkedin", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SocialLinkedin }),
	stringField("social_instagram", entity.CategoryGeneral, func(s *entity.SiteSettings) *string { return &s.SocialInstagram }),

	stringField("default_meta_title", entity.CategorySEO, func(s *entity.SiteSettings) *string { return &s.DefaultMetaTitle }),
	stringField("default_meta_description", entity.CategorySEO, func(s *entity.SiteSettings) *string { return &s.DefaultMetaDescription }),
	stringField("default_og_image", entity.CategorySEO, func(s *entity.SiteSettings) *string { return &s.DefaultOgImage }),

	boolField("enable_comments", entity.CategoryComments, func(s *entity.SiteSettings) *bool { return &s.EnableComments }),
	boolField("moderate_comments", entity.CategoryComments, func(s *entity.SiteSettings) *bool { return &s.ModerateComments }),
	boolField("allow_anonymous_comments", entity.CategoryComments, func(s *entity.SiteSettings) *bool { return &s.AllowAnonymousComments }),

	boolField("enable_newsletter", entity.CategoryEmail, func(s *entity.SiteSettings) *bool { return &s.EnableNewsletter }),
	stringField("smtp_host", entity.CategoryEmail, func(s *entity.SiteSettings) *string { return &s.SMTPHost }),
	stringField("smtp_port", entity.CategoryEmail, func(s *entity.SiteSettings) *string { return &s.SMTPPort }),
	stringField("smtp_username", entity.CategoryEmail, func(s *entity.SiteSettings) *string { return &s.SMTPUsername }),

	boolField("enable_analytics", entity.CategoryAnalytics, func(s *entity.SiteSettings) *bool { return &s.EnableAnalytics }),
	stringField("google_analytics_id", entity.CategoryAnalytics, func(s *entity.SiteSettings) *string { return &s.GoogleAnalyticsID }),
}

var settingFieldsByKey = func() map[string]settingField {
	m := make(map[string]settingField, len(settingFields))
	for _, f := range settingFields {
		m[f.key] = f
	}
	return m
}()

// SettingKeys lists every persisted settings key.
func SettingKeys() []string {
	keys := make([]string, len(settingFields))
	for i, f := range settingFields {
		keys[i] = f.key
	}
	return keys
}

// SettingDataType is the declared type of key; unknown keys are strings.
func SettingDataType(key string) entity.DataType {
	if field, ok := settingFieldsByKey[key]; ok {
		return field.dataType
	}
	return entity.DataTypeString
}

// SettingsFromRows starts from the defaults and overlays every known key.
// Unknown keys are ignored. A NULL boolean reads as false; a NULL string
// keeps its default.
func SettingsFromRows(rows []entity.SettingRow) entity.SiteSettings {
	out := entity.DefaultSiteSettings()
	for _, row := range rows {
		field, ok := settingFieldsByKey[row.Key]
		if !ok {
			continue
		}
		if row.Value == nil {
			if field.dataType == entity.DataTypeBoolean {
				*field.flag(&out) = false
			}
			continue
		}
		switch field.dataType {
		case entity.DataTypeBoolean:
			*field.flag(&out) = coerceBool(row.Value)
		default:
			*field.str(&out) = row.Value.Raw()
		}
	}
	return out
}

// SettingsToRows emits one row per known key, in table order.
func SettingsToRows(settings entity.SiteSettings) []entity.SettingRow {
	rows := make([]entity.SettingRow, 0, len(settingFields))
	for _, field := range settingFields {
		var value entity.SettingValue
		if field.dataType == entity.DataTypeBoolean {
			value = entity.BoolValue(*field.flag(&settings))
		} else {
			value = entity.StringValue(*field.str(&settings))
		}
		rows = append(rows, entity.SettingRow{
			Key:      field.key,
			Value:    value,
			Category: field.category,
			IsActive: true,
		})
	}
	return rows
}

func coerceBool(v entity.SettingValue) bool {
	switch val := v.(type) {
	case entity.BoolValue:
		return bool(val)
	default:
		return v.Raw() == "true"
	}
}
