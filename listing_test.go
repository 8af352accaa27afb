package discourse

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielsimon/discourse/views"
)

func makePosts(n int) []views.Post {
	posts := make([]views.Post, n)
	for i := range posts {
		posts[i] = views.Post{
			ID:       "p" + strconv.Itoa(i+1),
			Title:    "Post " + strconv.Itoa(i+1),
			Slug:     "post-" + strconv.Itoa(i+1),
			Category: "Life",
			Status:   views.StatusPublished,
		}
	}
	return posts
}

func TestFilterPosts(t *testing.T) {
	posts := []views.Post{
		{ID: "p1", Title: "Morning Routines", Excerpt: "Starting the day", Content: "Coffee first."},
		{ID: "p2", Title: "On Stillness", Excerpt: "Quiet moments", Content: "The value of morning silence."},
		{ID: "p3", Title: "Travel Notes", Excerpt: "A week away", Content: "Trains and stations."},
	}

	t.Run("matches title excerpt and content case-insensitively", func(t *testing.T) {
		got := FilterPosts(posts, "MORNING")
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].ID)
		assert.Equal(t, "p2", got[1].ID)
	})

	t.Run("empty term passes through", func(t *testing.T) {
		assert.Equal(t, posts, FilterPosts(posts, ""))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, FilterPosts(posts, "zebra"))
	})
}

func TestPaginate(t *testing.T) {
	t.Run("partitions into pages of six", func(t *testing.T) {
		posts := makePosts(13)

		page1, pg := Paginate(posts, 1)
		require.Len(t, page1, 6)
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 3, pg.TotalPages)
		assert.False(t, pg.HasPrev())
		assert.True(t, pg.HasNext())

		page3, pg := Paginate(posts, 3)
		require.Len(t, page3, 1)
		assert.Equal(t, "p13", page3[0].ID)
		assert.True(t, pg.HasPrev())
		assert.False(t, pg.HasNext())
	})

	t.Run("clamps out-of-range pages", func(t *testing.T) {
		posts := makePosts(7)

		_, pg := Paginate(posts, 99)
		assert.Equal(t, 2, pg.Page)

		first, pg := Paginate(posts, -1)
		assert.Equal(t, 1, pg.Page)
		assert.Len(t, first, 6)
	})

	t.Run("empty list", func(t *testing.T) {
		got, pg := Paginate(nil, 1)
		assert.Empty(t, got)
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 0, pg.TotalPages)
		assert.False(t, pg.HasPrev())
		assert.False(t, pg.HasNext())
	})

	t.Run("exact multiple has no short page", func(t *testing.T) {
		posts := makePosts(12)
		_, pg := Paginate(posts, 1)
		assert.Equal(t, 2, pg.TotalPages)
	})
}

func TestRelatedPosts(t *testing.T) {
	current := views.Post{ID: "p1", Category: "Growth"}
	posts := []views.Post{
		{ID: "p1", Category: "Growth"},
		{ID: "p2", Category: "Growth"},
		{ID: "p3", Category: "Life"},
		{ID: "p4", Category: "Growth"},
		{ID: "p5", Category: "Growth"},
	}

	related := RelatedPosts(current, posts, 2)
	require.Len(t, related, 2)
	assert.Equal(t, "p2", related[0].ID)
	assert.Equal(t, "p4", related[1].ID)

	assert.Nil(t, RelatedPosts(views.Post{ID: "p9"}, posts, 2))
}

func TestSummarizeCategories(t *testing.T) {
	categories := []views.Category{
		{ID: "cat_life", Name: "Life"},
		{ID: "cat_phil", Name: "Philosophy"},
	}
	posts := append(makePosts(5), views.Post{ID: "p6", Category: "Philosophy"})

	summaries := SummarizeCategories(categories, posts)
	require.Len(t, summaries, 2)

	life := summaries[0]
	assert.Equal(t, 5, life.PostCount)
	assert.Len(t, life.Recent, 3)

	phil := summaries[1]
	assert.Equal(t, 1, phil.PostCount)
	require.Len(t, phil.Recent, 1)
	assert.Equal(t, "p6", phil.Recent[0].ID)
}
