package discourse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielsimon/discourse/views"
)

var (
	testUser       = views.User{ID: "admin", Email: "daniel@example.com", DisplayName: "Daniel Simon"}
	testCategories = []views.Category{
		{ID: "cat_life", Name: "Life", Slug: "life"},
		{ID: "cat_growth", Name: "Growth", Slug: "growth"},
	}
	testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestBuildPostRequiresTitle(t *testing.T) {
	_, err := buildPost(postForm{Title: "   ", Content: "body"}, nil, testCategories, testUser, testNow)
	assert.ErrorIs(t, err, errTitleRequired)
}

func TestBuildPostDerivesSlugFromTitle(t *testing.T) {
	p, err := buildPost(postForm{Title: "My First Post!"}, nil, testCategories, testUser, testNow)
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", p.Slug)

	// An explicitly submitted slug is never overwritten.
	p, err = buildPost(postForm{Title: "My First Post!", Slug: "custom-slug"}, nil, testCategories, testUser, testNow)
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", p.Slug)

	// A title with no slug-safe characters cannot stand alone.
	_, err = buildPost(postForm{Title: "???"}, nil, testCategories, testUser, testNow)
	assert.ErrorIs(t, err, errSlugRequired)
}

func TestBuildPostNewDraft(t *testing.T) {
	f := postForm{
		Title:      "  On Stillness  ",
		Excerpt:    " Quiet moments ",
		Content:    "Some content.",
		CategoryID: "cat_growth",
		Tags:       "calm, life, calm",
	}
	p, err := buildPost(f, nil, testCategories, testUser, testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "On Stillness", p.Title)
	assert.Equal(t, "Quiet moments", p.Excerpt)
	assert.Equal(t, "Growth", p.Category)
	assert.Equal(t, []string{"calm", "life"}, p.Tags)
	assert.Equal(t, views.StatusDraft, p.Status)
	assert.Equal(t, "On Stillness", p.SEOTitle, "seo title defaults to the title")
	assert.Equal(t, testUser.ID, p.AuthorID)
	assert.Equal(t, "Daniel Simon", p.AuthorName)
	assert.Equal(t, "2024-03-01T12:00:00Z", p.CreatedAt)
	assert.Equal(t, "2024-03-01T12:00:00Z", p.UpdatedAt)
	assert.Empty(t, p.PublishedAt, "drafts carry no publish timestamp")
}

func TestBuildPostStampsPublishedAtOnce(t *testing.T) {
	// Draft to published stamps the transition time.
	p, err := buildPost(postForm{Title: "Going Live", Published: true}, nil, testCategories, testUser, testNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", p.PublishedAt)

	// A later save of an already published post keeps the original stamp.
	existing := p
	later := testNow.Add(48 * time.Hour)
	p2, err := buildPost(postForm{ID: existing.ID, Title: "Going Live", Published: true}, &existing, testCategories, testUser, later)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", p2.PublishedAt)
	assert.Equal(t, "2024-03-03T12:00:00Z", p2.UpdatedAt)
	assert.Equal(t, existing.CreatedAt, p2.CreatedAt)
	assert.Equal(t, existing.ID, p2.ID)

	// Unpublishing preserves the stamp, and republishing does not move it.
	p3, err := buildPost(postForm{ID: existing.ID, Title: "Going Live"}, &existing, testCategories, testUser, later)
	require.NoError(t, err)
	assert.Equal(t, views.StatusDraft, p3.Status)
	assert.Equal(t, "2024-03-01T12:00:00Z", p3.PublishedAt)
}

func TestBuildPostUnknownCategory(t *testing.T) {
	p, err := buildPost(postForm{Title: "Uncategorized", CategoryID: "cat_missing"}, nil, testCategories, testUser, testNow)
	require.NoError(t, err)
	assert.Empty(t, p.Category)
}

func TestComputeStats(t *testing.T) {
	posts := []views.Post{
		{Status: views.StatusPublished},
		{Status: views.StatusPublished},
		{Status: views.StatusDraft},
	}
	stats := ComputeStats(posts, 7, 2, 41)

	assert.Equal(t, 3, stats.TotalPosts)
	assert.Equal(t, 2, stats.PublishedPosts)
	assert.Equal(t, 1, stats.DraftPosts)
	assert.Equal(t, 7, stats.TotalComments)
	assert.Equal(t, 2, stats.PendingComments)
	assert.Equal(t, 41, stats.TotalSubscribers)
}

func TestDraftFromFormRoundTrips(t *testing.T) {
	f := postForm{
		ID:         "p1",
		Title:      "",
		Content:    "Half-written thoughts",
		CategoryID: "cat_life",
		Tags:       "go, writing",
		Published:  true,
	}
	draft := draftFromForm(f, testCategories)

	assert.Equal(t, "p1", draft.ID)
	assert.Equal(t, "Half-written thoughts", draft.Content)
	assert.Equal(t, "Life", draft.Category)
	assert.Equal(t, []string{"go", "writing"}, draft.Tags)
	assert.Equal(t, views.StatusPublished, draft.Status)
}
