package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// Pagination describes the current position in a client-paged post list.
type Pagination struct {
	Page       int
	TotalPages int
}

// HasPrev reports whether a previous page exists; the prev control is
// disabled at page 1.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a further page exists; the next control is
// disabled at the last page.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Pages returns the 1-based page numbers for the numbered controls.
func (p Pagination) Pages() []int {
	if p.TotalPages < 1 {
		return nil
	}
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Blog renders the article index with search, category filter, and
// pagination controls. filtered tells the empty state apart from a site
// with no published posts at all.
func Blog(cfg SiteConfig, meta PageMeta, posts []Post, categories []Category, search, activeCategory string, pg Pagination, filtered bool) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="blog-index"><h1>All Articles</h1>`)
		b.WriteString(`<p class="lead">Explore thoughts, reflections, and insights on life&#39;s journey</p>`)

		writeBlogFilters(b, categories, search, activeCategory)

		if len(posts) == 0 {
			b.WriteString(`<div class="empty-state"><h3>No articles found</h3><p>`)
			if filtered {
				b.WriteString(`Try adjusting your search or filter criteria.`)
			} else {
				b.WriteString(`No articles have been published yet.`)
			}
			b.WriteString(`</p>`)
			if filtered {
				b.WriteString(`<a class="button" href="/blog">Clear Filters</a>`)
			}
			b.WriteString(`</div>`)
		} else {
			b.WriteString(`<div class="post-grid">`)
			for _, p := range posts {
				writePostCard(b, p)
			}
			b.WriteString(`</div>`)
			writePagination(b, pg, search, activeCategory)
		}
		b.WriteString(`</section>`)
	})
}

func writeBlogFilters(b *bytes.Buffer, categories []Category, search, activeCategory string) {
	b.WriteString(`<form class="blog-filters" method="get" action="/blog">`)
	b.WriteString(`<input type="search" name="search" placeholder="Search articles..." value="` + esc(search) + `">`)
	b.WriteString(`<select name="category">`)
	b.WriteString(`<option value="all">All Categories</option>`)
	for _, c := range categories {
		sel := ""
		if c.Name == activeCategory {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + esc(c.Name) + `"` + sel + `>` + esc(c.Name) + `</option>`)
	}
	b.WriteString(`</select>`)
	b.WriteString(`<button type="submit">Filter</button>`)
	b.WriteString(`</form>`)
}

// writePagination renders numbered page links with first/prev disabled on
// page 1 and next/last disabled on the final page. Filter state is carried
// through every link.
func writePagination(b *bytes.Buffer, pg Pagination, search, activeCategory string) {
	if pg.TotalPages <= 1 {
		return
	}
	link := func(page int) string {
		href := "/blog?page=" + strconv.Itoa(page)
		if search != "" {
			href += "&search=" + QueryEscape(search)
		}
		if activeCategory != "" && activeCategory != "all" {
			href += "&category=" + QueryEscape(activeCategory)
		}
		return href
	}
	b.WriteString(`<nav class="pagination" aria-label="Pagination">`)
	if pg.HasPrev() {
		b.WriteString(`<a href="` + esc(link(1)) + `">&laquo; First</a>`)
		b.WriteString(`<a href="` + esc(link(pg.Page-1)) + `">Previous</a>`)
	} else {
		b.WriteString(`<span class="disabled">&laquo; First</span><span class="disabled">Previous</span>`)
	}
	for _, n := range pg.Pages() {
		if n == pg.Page {
			b.WriteString(`<span class="current">` + strconv.Itoa(n) + `</span>`)
		} else {
			b.WriteString(`<a href="` + esc(link(n)) + `">` + strconv.Itoa(n) + `</a>`)
		}
	}
	if pg.HasNext() {
		b.WriteString(`<a href="` + esc(link(pg.Page+1)) + `">Next</a>`)
		b.WriteString(`<a href="` + esc(link(pg.TotalPages)) + `">Last &raquo;</a>`)
	} else {
		b.WriteString(`<span class="disabled">Next</span><span class="disabled">Last &raquo;</span>`)
	}
	b.WriteString(`</nav>`)
}
