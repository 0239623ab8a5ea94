package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!  Foo---Bar", "hello-world-foo-bar"},
		{"My First Post", "my-first-post"},
		{"  --Leading and trailing--  ", "leading-and-trailing"},
		{"2024 Honda Civic: Review & Specs", "2024-honda-civic-review-specs"},
		{"Café Crème", "caf-crme"},
		{"a\tb\nc", "a-b-c"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!  Foo---Bar",
		"---",
		"Already-a-slug",
		"  Mixed CASE   and\ttabs ",
		"Über  ñandú -- 42",
		"a - - b",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"oil-change": true, "oil-change-2": true}

	got, err := UniqueSlug("oil-change", func(c string) (bool, error) { return taken[c], nil })
	require.NoError(t, err)
	assert.Equal(t, "oil-change-3", got)

	got, err = UniqueSlug("brakes", func(c string) (bool, error) { return taken[c], nil })
	require.NoError(t, err)
	assert.Equal(t, "brakes", got)
}

func TestUniqueSlug_LookupError(t *testing.T) {
	_, err := UniqueSlug("x", func(string) (bool, error) { return false, errors.New("boom") })
	assert.Error(t, err)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID(nil))
	assert.Equal(t, int64(8), NextID([]int64{3, 1, 7}))
	assert.Equal(t, int64(1), NextID([]int64{0}))
}
