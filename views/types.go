package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL, no trailing slash
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
	AuthorEmail string // SITE_AUTHOR_EMAIL
	Twitter     string // SITE_TWITTER, e.g. "@danielsdiscourse"
	Keywords    string // SITE_KEYWORDS, comma-separated SEO defaults
	Nav         []NavItem
}

// NavItem is a single header navigation link.
type NavItem struct {
	Name string
	Href string
}

// PageMeta carries per-page metadata into the <head> template: SEO tags,
// OpenGraph, canonical URL, and any JSON-LD blocks the page emits.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
	URL         string // canonical + og:url (absolute)
	OGType      string // "website" or "article"
	Image       string // og:image, optional
	JSONLD      []string
	CSRF        string // token for forms rendered inside the layout
	Theme       string // "dark" or "light"
	Msg         string // one-shot banner message (e.g. after newsletter signup)
}

// Post lifecycle states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Comment moderation states. Only aggregate counts are surfaced for now.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
)

// SubscriberActive marks a newsletter subscriber that should be counted.
const SubscriberActive = "active"

// Post is the core content record stored in SQLite and rendered by templates.
// Timestamps are RFC3339 strings; PublishedAt stays empty until the post
// first transitions from draft to published.
type Post struct {
	ID             string
	Title          string
	Slug           string
	Excerpt        string
	Content        string
	FeaturedImage  string
	CategoryID     string
	Category       string // category name, joined by string (not a strict FK)
	Tags           []string
	Status         string
	SEOTitle       string
	SEODescription string
	AuthorID       string
	AuthorName     string
	CreatedAt      string
	UpdatedAt      string
	PublishedAt    string
}

// Published reports whether the post is publicly visible.
func (p Post) Published() bool { return p.Status == StatusPublished }

// Link returns the site-relative URL of the post.
func (p Post) Link() string { return "/blog/" + p.Slug + "/" }

// LastModified returns the best modification timestamp for feeds and sitemaps.
func (p Post) LastModified() string {
	if p.UpdatedAt != "" {
		return p.UpdatedAt
	}
	return p.PublishedAt
}

// Category groups posts by theme. Read-mostly.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

// CategorySummary is a category plus the published posts that belong to it,
// as shown on the categories page.
type CategorySummary struct {
	Category
	PostCount int
	Recent    []Post // up to three most recent posts
}

// Comment on a post. The moderation flow is not implemented; comments exist
// as a collection the dashboard counts.
type Comment struct {
	ID         string
	PostID     string
	AuthorName string
	Content    string
	Status     string
	CreatedAt  string
}

// Subscriber is a newsletter signup. Email is unique.
type Subscriber struct {
	ID           string
	Email        string
	Status       string
	SubscribedAt string
}

// User is the authenticated admin identity stamped onto saved posts.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// Stats are the aggregate counts shown on the admin dashboard. They are
// derived from collection contents, never persisted.
type Stats struct {
	TotalPosts       int
	PublishedPosts   int
	DraftPosts       int
	TotalComments    int
	PendingComments  int
	TotalSubscribers int
}

// ShareURLs are prebuilt social sharing links for a post.
type ShareURLs struct {
	Twitter  string
	Facebook string
	LinkedIn string
	Reddit   string
	Email    string
	Copy     string
}
