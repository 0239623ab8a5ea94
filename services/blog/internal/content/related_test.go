package content

import (
	"testing"
	"time"

	"makemodelyear/services/blog/internal/entity"

	"github.com/stretchr/testify/assert"
)

func relatedFixture() (*entity.Post, []*entity.Post) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &entity.Post{ID: 1, Tags: []string{"go", "cars"}, Author: "Ann", Published: true, CreatedAt: t0}
	candidates := []*entity.Post{
		source,
		{ID: 2, Tags: []string{"cars"}, Author: "Bob", Published: true, CreatedAt: t0.Add(time.Hour)},
		{ID: 3, Tags: []string{"go", "cars"}, Author: "Bob", Published: true, CreatedAt: t0},
		{ID: 4, Author: "Ann", Published: true, CreatedAt: t0.Add(3 * time.Hour)},
		{ID: 5, Tags: []string{"go", "cars"}, Author: "Ann", Published: false, CreatedAt: t0},
		{ID: 6, Tags: []string{"boats"}, Author: "Bob", Published: true, CreatedAt: t0},
		{ID: 7, Tags: []string{" GO "}, Author: "Cy", Published: true, CreatedAt: t0.Add(2 * time.Hour)},
	}
	return source, candidates
}

func ids(posts []*entity.Post) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestRankRelated(t *testing.T) {
	source, candidates := relatedFixture()

	assert.Equal(t, []int64{3, 7, 2}, ids(RankRelated(source, candidates, 3)))
	assert.Equal(t, []int64{3, 7, 2, 4}, ids(RankRelated(source, candidates, 10)))
}

func TestRankRelated_DefaultLimit(t *testing.T) {
	source, candidates := relatedFixture()

	assert.Len(t, RankRelated(source, candidates, 0), DefaultRelatedLimit)
}

func TestRankRelated_NoCandidates(t *testing.T) {
	source := &entity.Post{ID: 1, Tags: []string{"rare"}}
	others := []*entity.Post{{ID: 2, Tags: []string{"common"}, Published: true}}

	got := RankRelated(source, others, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, RankRelated(nil, others, 3))
}

func TestHasTag(t *testing.T) {
	p := &entity.Post{Tags: []string{"Engine Oil", "brakes"}}

	assert.True(t, HasTag(p, "engine oil"))
	assert.True(t, HasTag(p, " BRAKES "))
	assert.False(t, HasTag(p, "tyres"))
	assert.False(t, HasTag(p, ""))
}
