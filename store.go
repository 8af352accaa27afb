package discourse

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielsimon/discourse/views"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (post slug, subscriber email).
var ErrDuplicate = errors.New("discourse: duplicate record")

// Store wraps a SQLite database and provides the content-access operations
// for posts, categories, comments, and newsletter subscribers.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    excerpt TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    featured_image TEXT NOT NULL DEFAULT '',
    category_id TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    status TEXT NOT NULL DEFAULT 'draft',
    seo_title TEXT NOT NULL DEFAULT '',
    seo_description TEXT NOT NULL DEFAULT '',
    author_id TEXT NOT NULL DEFAULT '',
    author_name TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    published_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS comments (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL,
    author_name TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS newsletter_subscribers (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    status TEXT NOT NULL DEFAULT 'active',
    subscribed_at TEXT NOT NULL
);
`)
	return err
}

const postColumns = `id, title, slug, excerpt, content, featured_image, category_id, category, tags, status, seo_title, seo_description, author_id, author_name, created_at, updated_at, published_at`

func scanPost(row interface{ Scan(...any) error }) (views.Post, error) {
	var p views.Post
	var tags string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.FeaturedImage, &p.CategoryID, &p.Category, &tags, &p.Status,
		&p.SEOTitle, &p.SEODescription, &p.AuthorID, &p.AuthorName,
		&p.CreatedAt, &p.UpdatedAt, &p.PublishedAt)
	if err != nil {
		return views.Post{}, err
	}
	p.Tags = views.DecodeTags(tags)
	return p, nil
}

func (s *Store) queryPosts(query string, args ...any) ([]views.Post, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListPublishedPosts returns published posts ordered by publish date
// descending. A non-empty category restricts results to an equality match
// on the post's category name.
func (s *Store) ListPublishedPosts(category string) ([]views.Post, error) {
	if category == "" {
		return s.queryPosts(`SELECT `+postColumns+` FROM posts WHERE status = ? ORDER BY published_at DESC`, views.StatusPublished)
	}
	return s.queryPosts(`SELECT `+postColumns+` FROM posts WHERE status = ? AND category = ? ORDER BY published_at DESC`, views.StatusPublished, category)
}

// GetPublishedPost returns the unique published post with the given slug.
func (s *Store) GetPublishedPost(slug string) (views.Post, error) {
	return scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ? AND status = ?`, slug, views.StatusPublished))
}

// GetPost returns a post by id regardless of status (for the editor).
func (s *Store) GetPost(id string) (views.Post, error) {
	return scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
}

// ListAllPosts returns every post, drafts included, newest first.
func (s *Store) ListAllPosts() ([]views.Post, error) {
	return s.queryPosts(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`)
}

// CreatePost inserts a new post. A slug collision returns ErrDuplicate.
func (s *Store) CreatePost(p views.Post) error {
	_, err := s.db.Exec(`INSERT INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.CategoryID, p.Category, views.EncodeTags(p.Tags), p.Status,
		p.SEOTitle, p.SEODescription, p.AuthorID, p.AuthorName,
		p.CreatedAt, p.UpdatedAt, p.PublishedAt)
	return mapUnique(err)
}

// UpdatePost rewrites an existing post by id. A slug collision with another
// post returns ErrDuplicate.
func (s *Store) UpdatePost(p views.Post) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, slug = ?, excerpt = ?, content = ?, featured_image = ?, category_id = ?, category = ?, tags = ?, status = ?, seo_title = ?, seo_description = ?, author_id = ?, author_name = ?, updated_at = ?, published_at = ? WHERE id = ?`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.CategoryID, p.Category, views.EncodeTags(p.Tags), p.Status,
		p.SEOTitle, p.SEODescription, p.AuthorID, p.AuthorName,
		p.UpdatedAt, p.PublishedAt, p.ID)
	if err != nil {
		return mapUnique(err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(id string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	return err
}

// ListCategories returns all categories ordered by name ascending.
func (s *Store) ListCategories() ([]views.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, description FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []views.Category
	for rows.Next() {
		var c views.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CreateCategory inserts a category. Slug collisions return ErrDuplicate.
func (s *Store) CreateCategory(c views.Category) error {
	_, err := s.db.Exec(`INSERT INTO categories (id, name, slug, description) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Slug, c.Description)
	return mapUnique(err)
}

// SeedCategories inserts the given categories only when the table is empty,
// so a fresh site starts with something to file posts under.
func (s *Store) SeedCategories(cats []views.Category) error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, c := range cats {
		if err := s.CreateCategory(c); err != nil {
			return err
		}
	}
	return nil
}

// CountComments returns the total comment count and the pending subset.
func (s *Store) CountComments() (total, pending int, err error) {
	err = s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(status = ?), 0) FROM comments`, views.CommentPending).Scan(&total, &pending)
	return total, pending, err
}

// CountActiveSubscribers returns the number of active newsletter subscribers.
func (s *Store) CountActiveSubscribers() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM newsletter_subscribers WHERE status = ?`, views.SubscriberActive).Scan(&n)
	return n, err
}

// CreateSubscriber records a newsletter signup. A duplicate email returns
// ErrDuplicate so callers can show the "already subscribed" message.
func (s *Store) CreateSubscriber(sub views.Subscriber) error {
	_, err := s.db.Exec(`INSERT INTO newsletter_subscribers (id, email, status, subscribed_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.Email, sub.Status, sub.SubscribedAt)
	return mapUnique(err)
}

// mapUnique converts the driver's uniqueness-violation error into
// ErrDuplicate. SQLite reports these with a "UNIQUE constraint" marker in
// the message.
func mapUnique(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint") {
		return ErrDuplicate
	}
	return err
}
