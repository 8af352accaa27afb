package views

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// AdminLogin renders the password prompt shown to unauthenticated visitors
// of the admin area.
func AdminLogin(cfg SiteConfig, meta PageMeta, showError bool) templ.Component {
	return bare(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			b.WriteString(`<p class="error">Wrong password.</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">`)
		b.WriteString(csrfField(meta.CSRF))
		b.WriteString(`<input type="password" name="password" placeholder="Password" autofocus required>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></section>`)
	})
}

// AdminDashboard renders aggregate statistics and the post management
// table. When loadFailed is set the statistics are withheld entirely and a
// single failure banner is shown instead of partial counts.
func AdminDashboard(cfg SiteConfig, meta PageMeta, stats Stats, posts []Post, loadFailed bool) templ.Component {
	return bare(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin"><header class="admin-header"><h1>Dashboard</h1>`)
		b.WriteString(`<div class="admin-actions">`)
		b.WriteString(`<a class="button" href="/admin/new/">New Post</a>`)
		b.WriteString(`<a class="button secondary" href="/" target="_blank">View Site</a>`)
		b.WriteString(`<form method="post" action="/admin/logout/">` + csrfField(meta.CSRF) + `<button type="submit">Log out</button></form>`)
		b.WriteString(`</div></header>`)

		if meta.Msg != "" {
			b.WriteString(`<p class="notice">` + esc(meta.Msg) + `</p>`)
		}

		if loadFailed {
			b.WriteString(`<p class="error">Failed to load dashboard data.</p></section>`)
			return
		}

		writeStatCards(b, stats)
		writePostTable(b, meta, posts)
		b.WriteString(`</section>`)
	})
}

func writeStatCards(b *bytes.Buffer, stats Stats) {
	card := func(label string, n int) {
		b.WriteString(`<div class="stat-card"><span class="stat-value">` + strconv.Itoa(n) + `</span><span class="stat-label">` + label + `</span></div>`)
	}
	b.WriteString(`<div class="stat-grid">`)
	card("Total Posts", stats.TotalPosts)
	card("Published", stats.PublishedPosts)
	card("Drafts", stats.DraftPosts)
	card("Comments", stats.TotalComments)
	card("Pending Comments", stats.PendingComments)
	card("Subscribers", stats.TotalSubscribers)
	b.WriteString(`</div>`)
}

func writePostTable(b *bytes.Buffer, meta PageMeta, posts []Post) {
	b.WriteString(`<h2>Posts</h2>`)
	if len(posts) == 0 {
		b.WriteString(`<p class="empty">No posts yet. Write the first one.</p>`)
		return
	}
	b.WriteString(`<table class="post-table"><thead><tr><th>Title</th><th>Status</th><th>Category</th><th>Created</th><th></th></tr></thead><tbody>`)
	for _, p := range posts {
		b.WriteString(`<tr><td>` + esc(p.Title) + `</td>`)
		b.WriteString(`<td><span class="status ` + esc(p.Status) + `">` + esc(p.Status) + `</span></td>`)
		b.WriteString(`<td>` + esc(p.Category) + `</td>`)
		b.WriteString(`<td>` + esc(FormatDate(p.CreatedAt)) + `</td>`)
		b.WriteString(`<td class="row-actions">`)
		if p.Published() {
			b.WriteString(`<a href="` + esc(p.Link()) + `" target="_blank">View</a> `)
		}
		b.WriteString(`<a href="/admin/edit/` + PathEscape(p.ID) + `/">Edit</a>`)
		b.WriteString(`<form method="post" action="/admin/delete/` + PathEscape(p.ID) + `/" onsubmit="return confirm('Delete this post?')">`)
		b.WriteString(csrfField(meta.CSRF))
		b.WriteString(`<button type="submit" class="danger">Delete</button></form>`)
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

// AdminEditor renders the post form for both create and edit. errMsg is an
// inline validation or save failure; the submitted draft round-trips
// through the form so nothing is lost on failure.
func AdminEditor(cfg SiteConfig, meta PageMeta, post Post, categories []Category, errMsg string) templ.Component {
	return bare(cfg, meta, func(b *bytes.Buffer) {
		heading := "New Post"
		if post.ID != "" {
			heading = "Edit Post"
		}
		b.WriteString(`<section class="admin admin-editor"><header class="admin-header"><h1>` + heading + `</h1>`)
		b.WriteString(`<a class="button secondary" href="/admin/">Back to Dashboard</a></header>`)

		if errMsg != "" {
			b.WriteString(`<p class="error">` + esc(errMsg) + `</p>`)
		}

		b.WriteString(`<form method="post" action="/admin/save/" enctype="multipart/form-data">`)
		b.WriteString(csrfField(meta.CSRF))
		b.WriteString(`<input type="hidden" name="id" value="` + esc(post.ID) + `">`)

		field := func(label, name, value, placeholder string) {
			b.WriteString(`<label>` + label + `<input type="text" name="` + name + `" value="` + esc(value) + `" placeholder="` + esc(placeholder) + `"></label>`)
		}
		field("Title", "title", post.Title, "Post title")
		field("Slug", "slug", post.Slug, "auto-generated from title when left blank")
		b.WriteString(`<label>Excerpt<textarea name="excerpt" rows="3">` + esc(post.Excerpt) + `</textarea></label>`)
		b.WriteString(`<label>Content<textarea name="content" rows="18" placeholder="Paragraphs separated by blank lines. ## Heading, ### Subheading, *quote*">` + esc(post.Content) + `</textarea></label>`)

		b.WriteString(`<label>Category<select name="category_id"><option value="">None</option>`)
		for _, c := range categories {
			sel := ""
			if c.ID == post.CategoryID {
				sel = ` selected`
			}
			b.WriteString(`<option value="` + esc(c.ID) + `"` + sel + `>` + esc(c.Name) + `</option>`)
		}
		b.WriteString(`</select></label>`)

		field("Tags", "tags", strings.Join(post.Tags, ", "), "comma, separated, tags")

		b.WriteString(`<label>Featured image URL<input type="text" name="featured_image" value="` + esc(post.FeaturedImage) + `"></label>`)
		b.WriteString(`<label>Upload featured image<input type="file" name="image" accept="image/*"></label>`)
		if post.FeaturedImage != "" {
			b.WriteString(`<img class="featured-preview" src="` + esc(post.FeaturedImage) + `" alt="Featured image preview">`)
		}

		field("SEO title", "seo_title", post.SEOTitle, "defaults to the post title")
		b.WriteString(`<label>SEO description<textarea name="seo_description" rows="2">` + esc(post.SEODescription) + `</textarea></label>`)

		checked := ""
		if post.Published() {
			checked = ` checked`
		}
		b.WriteString(`<label class="toggle"><input type="checkbox" name="published"` + checked + `> Published</label>`)

		b.WriteString(`<button type="submit" class="primary">Save</button>`)
		b.WriteString(`</form></section>`)
	})
}
