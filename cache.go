package discourse

import (
	"sync"
	"time"

	"github.com/danielsimon/discourse/views"
)

// PostCache is an in-memory snapshot of published posts and categories with
// a TTL. Admin writes invalidate it so the public pages never serve a stale
// edit for longer than one request.
type PostCache struct {
	mu         sync.RWMutex
	posts      []views.Post
	categories []views.Category
	fetched    time.Time
	ttl        time.Duration
	store      *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.categories = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPublishedPosts("")
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []views.Post{}
	}
	categories, err := c.store.ListCategories()
	if err != nil {
		return err
	}
	c.posts = posts
	c.categories = categories
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and categories after ensuring freshness.
// It tries a read lock first; a write lock is only taken for a reload.
func (c *PostCache) ensureLoaded() ([]views.Post, []views.Category, error) {
	c.mu.RLock()
	if c.valid() {
		posts, categories := c.posts, c.categories
		c.mu.RUnlock()
		return posts, categories, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.categories, nil
}

// ListPosts returns published posts ordered by publish date descending,
// optionally restricted to a category name ("" or "all" pass through).
func (c *PostCache) ListPosts(category string) ([]views.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return posts, nil
	}
	var filtered []views.Post
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListCategories returns all categories ordered by name.
func (c *PostCache) ListCategories() ([]views.Category, error) {
	_, categories, err := c.ensureLoaded()
	return categories, err
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(slug string) (views.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return views.Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return views.Post{}, ErrNotFound
}
