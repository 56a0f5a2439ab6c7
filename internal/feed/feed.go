// Package feed derives the visible slice of a fetched post set from
// the current search text, selected tag, and page. The full set is
// loaded once per page view; all filtering happens in memory.
package feed

import (
	"strings"

	"github.com/stormcreate/stormblog/model"
)

// PageSize is fixed; the blog grid shows six cards per page.
const PageSize = 6

// Controller is constructed per page view and holds no global state.
type Controller struct {
	all      []model.Post
	filtered []model.Post
	tags     []string
	query    string
	tag      string
	page     int
}

func New(posts []model.Post) *Controller {
	c := &Controller{}
	c.Reset(posts)
	return c
}

// Reset replaces the full set, recomputes the tag universe, and
// reapplies the current filters from page 1. The tag universe depends
// only on the full set, never on the filters.
func (c *Controller) Reset(posts []model.Post) {
	c.all = posts
	c.tags = distinctTags(posts)
	c.page = 1
	c.apply()
}

// SetQuery updates the free-text filter and returns to page 1.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.page = 1
	c.apply()
}

// SetTag selects a tag filter; the empty string means "all".
func (c *Controller) SetTag(tag string) {
	c.tag = tag
	c.page = 1
	c.apply()
}

// SetPage clamps the requested page into [1, PageCount] (or 1 when the
// filtered set is empty).
func (c *Controller) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	pc := c.PageCount()
	if pc < 1 {
		pc = 1
	}
	if n > pc {
		n = pc
	}
	c.page = n
}

func (c *Controller) Query() string { return c.query }
func (c *Controller) Tag() string   { return c.tag }
func (c *Controller) Page() int     { return c.page }

// Tags is the distinct set of labels across the full fetched set, in
// first-seen order.
func (c *Controller) Tags() []string { return c.tags }

// Filtered is the whole filtered sequence, order preserved from the
// fetch (creation time descending).
func (c *Controller) Filtered() []model.Post { return c.filtered }

func (c *Controller) PageCount() int {
	return (len(c.filtered) + PageSize - 1) / PageSize
}

// VisiblePage is the slice [(page-1)*PageSize, page*PageSize) of the
// filtered set.
func (c *Controller) VisiblePage() []model.Post {
	start := (c.page - 1) * PageSize
	if start >= len(c.filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	return c.filtered[start:end]
}

// apply recomputes the filtered view: a post is visible iff it matches
// the query (empty query matches all; case-insensitive substring over
// title or content) and carries the selected tag (empty tag matches
// all).
func (c *Controller) apply() {
	if c.query == "" && c.tag == "" {
		c.filtered = c.all
		return
	}
	q := strings.ToLower(c.query)
	filtered := make([]model.Post, 0, len(c.all))
	for _, p := range c.all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			continue
		}
		if c.tag != "" && !p.HasTag(c.tag) {
			continue
		}
		filtered = append(filtered, p)
	}
	c.filtered = filtered
}

func distinctTags(posts []model.Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	return tags
}
