package discourse

import (
	"strings"

	"github.com/danielsimon/discourse/views"
)

// PostsPerPage is the fixed page size of the blog index.
const PostsPerPage = 6

// FilterPosts returns the posts matching the search term by case-insensitive
// substring containment against title, excerpt, or content, preserving the
// input order. An empty term passes the input through.
func FilterPosts(posts []views.Post, term string) []views.Post {
	if term == "" {
		return posts
	}
	needle := strings.ToLower(term)
	var matched []views.Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Excerpt), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Paginate slices the filtered post list into the requested 1-based page of
// PostsPerPage entries. Out-of-range pages clamp to the nearest valid page;
// an empty list yields page 1 of 0.
func Paginate(posts []views.Post, page int) ([]views.Post, views.Pagination) {
	totalPages := (len(posts) + PostsPerPage - 1) / PostsPerPage
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	pg := views.Pagination{Page: page, TotalPages: totalPages}
	if totalPages == 0 {
		return nil, pg
	}
	start := (page - 1) * PostsPerPage
	end := start + PostsPerPage
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], pg
}

// RelatedPosts returns up to limit published posts sharing the given post's
// category, excluding the post itself.
func RelatedPosts(current views.Post, posts []views.Post, limit int) []views.Post {
	if current.Category == "" {
		return nil
	}
	var related []views.Post
	for _, p := range posts {
		if p.ID == current.ID {
			continue
		}
		if p.Category == current.Category {
			related = append(related, p)
			if len(related) == limit {
				break
			}
		}
	}
	return related
}

// SummarizeCategories pairs each category with its published post count and
// up to three most recent posts, for the categories page.
func SummarizeCategories(categories []views.Category, posts []views.Post) []views.CategorySummary {
	summaries := make([]views.CategorySummary, 0, len(categories))
	for _, c := range categories {
		s := views.CategorySummary{Category: c}
		for _, p := range posts {
			if p.Category != c.Name {
				continue
			}
			s.PostCount++
			if len(s.Recent) < 3 {
				s.Recent = append(s.Recent, p)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
