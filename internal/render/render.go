// Package render maps entities to markup fragments. Every function is
// pure: no network, no clock, no shared state. All free-text fields
// (author names, bodies, titles) are escaped before embedding.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/stormcreate/stormblog/model"
)

const previewLen = 100

func esc(s string) string { return html.EscapeString(s) }

// FormatDate renders a creation timestamp the way the site shows it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// Preview returns the card teaser: the description when present,
// otherwise the first hundred characters of the raw content.
func Preview(p model.Post) string {
	if p.Description != "" {
		return p.Description
	}
	return truncate(p.Content, previewLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}

// Initial is the avatar letter for a display name.
func Initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Stars renders exactly five indicators: the first r filled, the rest
// empty. Out-of-range ratings are clamped; fractional ratings never
// reach here because the form submits integers (round down upstream).
func Stars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < r {
			b.WriteString(`<i class="fas fa-star star filled"></i>`)
		} else {
			b.WriteString(`<i class="fas fa-star star"></i>`)
		}
	}
	return b.String()
}

// TagPills renders up to max tag labels; max <= 0 means all.
func TagPills(tags []string, max int) string {
	if max > 0 && len(tags) > max {
		tags = tags[:max]
	}
	var b strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&b, `<span class="tag-pill">%s</span>`, esc(t))
	}
	return b.String()
}

// PostCard is the listing fragment linking to the detail page.
func PostCard(p model.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a href="/post?id=%s" class="post-card">`, p.ID.Hex())
	if p.ImageURL != "" {
		fmt.Fprintf(&b, `<div class="post-card-image"><img src="%s" alt="%s"></div>`, esc(p.ImageURL), esc(p.Title))
	} else {
		b.WriteString(`<div class="post-card-image placeholder"></div>`)
	}
	b.WriteString(`<div class="post-card-body">`)
	fmt.Fprintf(&b, `<div class="post-card-tags">%s</div>`, TagPills(p.Tags, 2))
	fmt.Fprintf(&b, `<h3>%s</h3>`, esc(p.Title))
	fmt.Fprintf(&b, `<p>%s</p>`, esc(Preview(p)))
	fmt.Fprintf(&b, `<div class="post-card-meta">%s · %d views</div>`, FormatDate(p.CreatedAt), p.Views)
	b.WriteString(`</div></a>`)
	return b.String()
}

// PostCards joins card fragments for a listing grid.
func PostCards(posts []model.Post) string {
	var b strings.Builder
	for _, p := range posts {
		b.WriteString(PostCard(p))
	}
	return b.String()
}

// CommentCard renders one comment. Author and body are visitor input.
func CommentCard(c model.Comment) string {
	var b strings.Builder
	b.WriteString(`<div class="comment-card">`)
	fmt.Fprintf(&b, `<div class="comment-avatar">%s</div>`, esc(Initial(c.Author)))
	b.WriteString(`<div class="comment-body">`)
	fmt.Fprintf(&b, `<div class="comment-author">%s</div>`, esc(c.Author))
	fmt.Fprintf(&b, `<div class="comment-date">%s</div>`, FormatDate(c.CreatedAt))
	fmt.Fprintf(&b, `<p class="comment-text">%s</p>`, esc(c.Text))
	b.WriteString(`</div></div>`)
	return b.String()
}

// ReviewCard renders one testimonial with its star rating.
func ReviewCard(r model.Review) string {
	var b strings.Builder
	b.WriteString(`<div class="review-card">`)
	fmt.Fprintf(&b, `<div class="review-avatar">%s</div>`, esc(Initial(r.UserName)))
	fmt.Fprintf(&b, `<h4 class="review-author">%s</h4>`, esc(r.UserName))
	fmt.Fprintf(&b, `<div class="review-date">%s</div>`, FormatDate(r.CreatedAt))
	fmt.Fprintf(&b, `<div class="review-stars">%s</div>`, Stars(r.Rating))
	fmt.Fprintf(&b, `<p class="review-text">%s</p>`, esc(r.Text))
	b.WriteString(`</div>`)
	return b.String()
}

// Pagination renders numbered page links; pageURL maps a page number
// to its href (the handler owns the query-string shape). One page or
// fewer renders nothing.
func Pagination(current, total int, pageURL func(page int) string) string {
	if total <= 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="pagination">`)
	for i := 1; i <= total; i++ {
		cls := "page-btn"
		if i == current {
			cls = "page-btn active"
		}
		fmt.Fprintf(&b, `<a class="%s" href="%s">%d</a>`, cls, esc(pageURL(i)), i)
	}
	b.WriteString(`</nav>`)
	return b.String()
}

// EmptyState is the non-error placeholder for absent content.
func EmptyState(message string) string {
	return fmt.Sprintf(`<div class="empty-state">%s</div>`, esc(message))
}
