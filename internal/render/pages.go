package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/stormcreate/stormblog/model"
)

// HomeBody: hero, latest posts, testimonials, and either the review
// form or a sign-in prompt.
func HomeBody(posts []model.Post, reviews []model.Review, signedIn bool, displayName string) string {
	var b strings.Builder
	b.WriteString(`<section class="hero"><h1>StormCreate</h1><p>Notes on building things.</p></section>`)

	b.WriteString(`<section class="latest-posts"><h2>Latest posts</h2><div class="post-grid">`)
	if len(posts) == 0 {
		b.WriteString(EmptyState("No posts published yet."))
	} else {
		b.WriteString(PostCards(posts))
	}
	b.WriteString(`</div></section>`)

	b.WriteString(`<section class="reviews"><h2>Reviews</h2><div class="review-grid">`)
	if len(reviews) == 0 {
		b.WriteString(EmptyState("No reviews yet. Be the first!"))
	} else {
		for _, r := range reviews {
			b.WriteString(ReviewCard(r))
		}
	}
	b.WriteString(`</div>`)

	if signedIn {
		fmt.Fprintf(&b, `<form method="post" action="/api/reviews" class="review-form"><p>Reviewing as %s</p>`, esc(displayName))
		b.WriteString(`<select name="rating">`)
		for i := 5; i >= 1; i-- {
			fmt.Fprintf(&b, `<option value="%d">%d</option>`, i, i)
		}
		b.WriteString(`</select>` +
			`<textarea name="text" required placeholder="Your review"></textarea>` +
			`<button type="submit">Submit review</button></form>`)
	} else {
		b.WriteString(`<p class="review-auth-prompt">Sign in to leave a review.</p>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

// BlogBody: search box, tag pills, the visible page of cards, and the
// paginator.
func BlogBody(visible []model.Post, tags []string, activeTag, query string, page, pageCount int, pageURL func(int) string) string {
	var b strings.Builder
	b.WriteString(`<section class="blog"><h1>Blog</h1>`)

	b.WriteString(`<form method="get" action="/blog" class="search-form">`)
	fmt.Fprintf(&b, `<input type="search" name="q" value="%s" placeholder="Search posts">`, esc(query))
	if activeTag != "" {
		fmt.Fprintf(&b, `<input type="hidden" name="tag" value="%s">`, esc(activeTag))
	}
	b.WriteString(`<button type="submit">Search</button></form>`)

	b.WriteString(`<div class="tag-filter">`)
	allCls := "tag-btn"
	if activeTag == "" {
		allCls = "tag-btn active"
	}
	fmt.Fprintf(&b, `<a class="%s" href="/blog">All</a>`, allCls)
	for _, t := range tags {
		cls := "tag-btn"
		if t == activeTag {
			cls = "tag-btn active"
		}
		fmt.Fprintf(&b, `<a class="%s" href="/blog?tag=%s">%s</a>`, cls, queryEscape(t), esc(t))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="post-grid">`)
	if len(visible) == 0 {
		b.WriteString(EmptyState("No posts found."))
	} else {
		b.WriteString(PostCards(visible))
	}
	b.WriteString(`</div>`)
	b.WriteString(Pagination(page, pageCount, pageURL))
	b.WriteString(`</section>`)
	return b.String()
}

// PostBody: the article, related posts, comment thread, comment form.
func PostBody(p model.Post, liked bool, comments []model.Comment, related []model.Post) string {
	var b strings.Builder
	b.WriteString(PostDetail(p, liked))

	if len(related) > 0 {
		b.WriteString(`<section class="related-posts"><h2>Related posts</h2><div class="post-grid">`)
		b.WriteString(PostCards(related))
		b.WriteString(`</div></section>`)
	}

	b.WriteString(`<section class="comments"><h2>Comments</h2><div class="comment-list">`)
	if len(comments) == 0 {
		b.WriteString(EmptyState("No comments yet. Be the first!"))
	} else {
		for _, c := range comments {
			b.WriteString(CommentCard(c))
		}
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<form method="post" action="/api/posts/%s/comments" class="comment-form">`, p.ID.Hex())
	b.WriteString(`<input type="text" name="author" required placeholder="Your name">` +
		`<textarea name="text" required placeholder="Your comment"></textarea>` +
		`<button type="submit">Send</button></form></section>`)
	return b.String()
}

// PostNotFoundBody is the empty-state view for an absent post id; a
// missing post is not an error.
func PostNotFoundBody() string {
	return EmptyState("Post not found or deleted.")
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}
