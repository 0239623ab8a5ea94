package entity

import (
	"strconv"
	"time"
)

type SettingCategory string

const (
	CategoryGeneral   SettingCategory = "general"
	CategorySEO       SettingCategory = "seo"
	CategoryComments  SettingCategory = "comments"
	CategoryEmail     SettingCategory = "email"
	CategoryAnalytics SettingCategory = "analytics"
)

type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeBoolean DataType = "boolean"
)

// SettingValue is either a StringValue or a BoolValue; DataType is the discriminant.
type SettingValue interface {
	DataType() DataType
	Raw() string
	isSettingValue()
}

type StringValue string

func (StringValue) DataType() DataType { return DataTypeString }
func (v StringValue) Raw() string      { return string(v) }
func (StringValue) isSettingValue()    {}

type BoolValue bool

func (BoolValue) DataType() DataType { return DataTypeBoolean }
func (v BoolValue) Raw() string      { return strconv.FormatBool(bool(v)) }
func (BoolValue) isSettingValue()    {}

// ParseSettingValue decodes a stored value using its data_type column.
func ParseSettingValue(dataType DataType, raw string) SettingValue {
	if dataType == DataTypeBoolean {
		return BoolValue(raw == "true")
	}
	return StringValue(raw)
}

// SettingRow is one persisted key. A nil Value means the column was NULL.
type SettingRow struct {
	Key       string
	Value     SettingValue
	Category  SettingCategory
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SiteSettings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	SiteURL         string `json:"siteUrl"`
	ContactEmail    string `json:"contactEmail"`
	SocialTwitter   string `json:"socialTwitter"`
	SocialFacebook  string `json:"socialFacebook"`
	SocialLinkedin  string `json:"socialLinkedin"`
	SocialInstagram string `json:"socialInstagram"`

	DefaultMetaTitle       string `json:"defaultMetaTitle"`
	DefaultMetaDescription string `json:"defaultMetaDescription"`
	DefaultOgImage         string `json:"defaultOgImage"`

	EnableComments         bool `json:"enableComments"`
	ModerateComments       bool `json:"moderateComments"`
	AllowAnonymousComments bool `json:"allowAnonymousComments"`

	EnableNewsletter bool   `json:"enableNewsletter"`
	SMTPHost         string `json:"smtpHost"`
	SMTPPort         string `json:"smtpPort"`
	SMTPUsername     string `json:"smtpUsername"`

	EnableAnalytics   bool   `json:"enableAnalytics"`
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
}

// Public drops the mail server details, which only admins may read.
func (s SiteSettings) Public() SiteSettings {
	s.SMTPHost = ""
	s.SMTPPort = ""
	s.SMTPUsername = ""
	return s
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:               "Make Model Year",
		SiteDescription:        "Your trusted source for automotive information",
		SiteURL:                "https://makemodelyear.in",
		ContactEmail:           "admin@makemodelyear.in",
		DefaultMetaTitle:       "Make Model Year - Automotive Information",
		DefaultMetaDescription: "Your trusted source for automotive information and reviews",
		EnableComments:         true,
		ModerateComments:       true,
		AllowAnonymousComments: false,
		EnableNewsletter:       true,
		SMTPPort:               "587",
		EnableAnalytics:        true,
	}
}
