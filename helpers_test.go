package discourse

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielsimon/discourse/views"
)

var testSite = views.SiteConfig{
	Name:        "Daniel's Discourse",
	URL:         "https://www.example.com",
	Description: "Personal reflections",
	Author:      "Daniel Simon",
	AuthorEmail: "daniel@example.com",
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"What's New? (2024 Edition!)", "whats-new-2024-edition"},
		{"already-a-slug", "already-a-slug"},
		{"MIXED Case Title", "mixed-case-title"},
		{"dash - heavy -- title", "dash-heavy-title"},
		{"---", ""},
		{"日本語のみ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIdempotentAndSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{"My First Post", "Go & The Art of Waiting", "100 Days of Writing"}
	for _, in := range inputs {
		s := Slugify(in)
		require.NotEmpty(t, s)
		assert.True(t, safe.MatchString(s), "slug %q has unsafe characters", s)
		assert.Equal(t, s, Slugify(s), "slugify is not idempotent for %q", in)
	}
}

func TestParseTagInput(t *testing.T) {
	assert.Equal(t, []string{"go", "writing", "life"}, ParseTagInput("go, writing ,life"))
	assert.Equal(t, []string{"go"}, ParseTagInput("go,, go , "))
	assert.Nil(t, ParseTagInput(""))
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "example.com", DisplayURL("https://www.example.com/"))
	assert.Equal(t, "example.com/blog", DisplayURL("http://example.com/blog"))
}

func TestSocialShareURLs(t *testing.T) {
	share := SocialShareURLs(testSite, "A Post & More", "/blog/a-post/", "An excerpt")

	assert.Contains(t, share.Twitter, "twitter.com/intent/tweet")
	assert.Contains(t, share.Twitter, "url=https%3A%2F%2Fwww.example.com%2Fblog%2Fa-post%2F")
	assert.Contains(t, share.Twitter, "text=A+Post+%26+More")
	assert.Contains(t, share.Facebook, "facebook.com/sharer")
	assert.Contains(t, share.LinkedIn, "linkedin.com/sharing")
	assert.Contains(t, share.Reddit, "reddit.com/submit")
	assert.Contains(t, share.Email, "mailto:?subject=")
	assert.Contains(t, share.Email, "%0A%0A")
	assert.Equal(t, "https://www.example.com/blog/a-post/", share.Copy)
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(testSite)), &data))

	assert.Equal(t, "WebSite", data["@type"])
	assert.Equal(t, testSite.Name, data["name"])

	action, ok := data["potentialAction"].(map[string]any)
	require.True(t, ok)
	target := action["target"].(map[string]any)
	assert.Contains(t, target["urlTemplate"], "{search_term_string}")
}

func TestArticleJsonLD(t *testing.T) {
	post := views.Post{
		ID:            "p1",
		Title:         "On Stillness",
		Slug:          "on-stillness",
		Excerpt:       "Quiet moments",
		FeaturedImage: "https://www.example.com/public/blog-images/still.jpg",
		Tags:          []string{"calm", "life"},
		AuthorName:    "Daniel Simon",
		PublishedAt:   "2024-01-15T10:00:00Z",
		UpdatedAt:     "2024-02-01T10:00:00Z",
	}

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(ArticleJsonLD(testSite, post)), &data))

	assert.Equal(t, "BlogPosting", data["@type"])
	assert.Equal(t, "On Stillness", data["headline"])
	assert.Equal(t, "https://www.example.com/blog/on-stillness/", data["url"])
	assert.Equal(t, "2024-01-15T10:00:00Z", data["datePublished"])
	assert.Equal(t, "calm, life", data["keywords"])

	img := data["image"].(map[string]any)
	assert.Equal(t, post.FeaturedImage, img["url"])
}

func TestArticleJsonLDOmitsEmptyImage(t *testing.T) {
	post := views.Post{Title: "Bare", Slug: "bare"}

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(ArticleJsonLD(testSite, post)), &data))
	_, hasImage := data["image"]
	assert.False(t, hasImage)
	_, hasKeywords := data["keywords"]
	assert.False(t, hasKeywords)
}
