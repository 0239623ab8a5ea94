package content

import (
	"sort"
	"strings"

	"makemodelyear/services/blog/internal/entity"
)

const DefaultRelatedLimit = 3

// RankRelated picks other published posts that share a tag or the author with
// source. Ordered by shared tag count, then newest first.
func RankRelated(source *entity.Post, candidates []*entity.Post, limit int) []*entity.Post {
	if source == nil {
		return []*entity.Post{}
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	sourceTags := make(map[string]struct{}, len(source.Tags))
	for _, t := range source.Tags {
		if tag := normalizeTag(t); tag != "" {
			sourceTags[tag] = struct{}{}
		}
	}
	author := strings.TrimSpace(source.Author)

	type scored struct {
		post    *entity.Post
		overlap int
	}
	var ranked []scored
	for _, p := range candidates {
		if p == nil || p.ID == source.ID || !p.Published {
			continue
		}
		overlap := 0
		for _, t := range p.Tags {
			if _, ok := sourceTags[normalizeTag(t)]; ok {
				overlap++
			}
		}
		sameAuthor := author != "" && strings.TrimSpace(p.Author) == author
		if overlap == 0 && !sameAuthor {
			continue
		}
		ranked = append(ranked, scored{post: p, overlap: overlap})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].overlap != ranked[j].overlap {
			return ranked[i].overlap > ranked[j].overlap
		}
		return ranked[i].post.CreatedAt.After(ranked[j].post.CreatedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]*entity.Post, len(ranked))
	for i, r := range ranked {
		out[i] = r.post
	}
	return out
}

// HasTag reports whether the post carries tag, ignoring case and surrounding space.
func HasTag(p *entity.Post, tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}
	for _, t := range p.Tags {
		if normalizeTag(t) == want {
			return true
		}
	}
	return false
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
