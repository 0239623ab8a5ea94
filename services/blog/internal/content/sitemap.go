package content

import (
	"encoding/xml"
	"time"

	"makemodelyear/services/blog/internal/entity"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func BuildSitemap(baseURL string, posts []*entity.Post, now time.Time) SitemapURLSet {
	today := now.UTC().Format(time.RFC3339)
	urls := []SitemapURL{
		{Loc: BuildURL(baseURL), LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: BuildURL(baseURL, "blog"), LastMod: today, ChangeFreq: "daily", Priority: "0.9"},
	}
	for _, p := range posts {
		lastMod := p.CreatedAt
		if p.PublishedDate != nil {
			lastMod = *p.PublishedDate
		}
		if lastMod.IsZero() {
			lastMod = now
		}
		urls = append(urls, SitemapURL{
			Loc:        BuildURL(baseURL, "blog", p.Slug),
			LastMod:    lastMod.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	return SitemapURLSet{XMLNS: sitemapNamespace, URLs: urls}
}
