package s3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublicURL(t *testing.T) {
	tests := []struct {
		name       string
		publicBase string
		endpoint   string
		disableSSL bool
		region     string
		want       string
	}{
		{
			name:       "explicit public base",
			publicBase: "https://cdn.makemodelyear.in",
			endpoint:   "http://minio:9000",
			want:       "https://cdn.makemodelyear.in/posts/1_a.png",
		},
		{
			name:       "minio without ssl",
			endpoint:   "http://localhost:9000",
			disableSSL: true,
			want:       "http://localhost:9000/blog-images/posts/1_a.png",
		},
		{
			name:     "minio with ssl",
			endpoint: "storage.internal",
			want:     "https://storage.internal/blog-images/posts/1_a.png",
		},
		{
			name:   "aws",
			region: "eu-west-1",
			want:   "https://blog-images.s3.eu-west-1.amazonaws.com/posts/1_a.png",
		},
		{
			name: "aws default region",
			want: "https://blog-images.s3.us-east-1.amazonaws.com/posts/1_a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPublicURL(tt.publicBase, tt.endpoint, tt.disableSSL, tt.region, "blog-images", "posts/1_a.png")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicReadPolicy(t *testing.T) {
	var policy map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("blog-images")), &policy))
	assert.Contains(t, publicReadPolicy("blog-images"), "arn:aws:s3:::blog-images/*")
}
