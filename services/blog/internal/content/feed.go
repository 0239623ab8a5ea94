package content

import (
	"encoding/xml"
	"time"

	"makemodelyear/services/blog/internal/entity"
)

const FeedSize = 20

type RSS struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel RSSChannel `xml:"channel"`
}

type RSSChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []RSSItem `xml:"item"`
}

type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

// BuildFeed expects posts newest first and keeps the first FeedSize.
func BuildFeed(settings entity.SiteSettings, posts []*entity.Post) RSS {
	if len(posts) > FeedSize {
		posts = posts[:FeedSize]
	}
	items := make([]RSSItem, 0, len(posts))
	for _, p := range posts {
		pub := p.CreatedAt
		if p.PublishedDate != nil {
			pub = *p.PublishedDate
		}
		postURL := BuildURL(settings.SiteURL, "blog", p.Slug)
		items = append(items, RSSItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			Author:      p.Author,
			Categories:  p.Tags,
			PubDate:     pub.UTC().Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	return RSS{
		Version: "2.0",
		Channel: RSSChannel{
			Title:       settings.SiteName + " Blog",
			Link:        BuildURL(settings.SiteURL, "blog"),
			Description: settings.SiteDescription,
			Items:       items,
		},
	}
}
