package render

import (
	"fmt"
	"strings"

	"github.com/stormcreate/stormblog/model"
)

// Page wraps a body fragment in the shared document shell. The theme
// class comes from the visitor's cookie.
func Page(title, theme, body string) string {
	if theme != "dark" {
		theme = "light"
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, `<html lang="en" class="%s">`, theme)
	b.WriteString(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	fmt.Fprintf(&b, `<title>%s - StormCreate</title>`, esc(title))
	b.WriteString(`<link rel="stylesheet" href="/static/site.css"></head><body>`)
	b.WriteString(`<nav class="topnav"><a href="/" class="brand">StormCreate</a>` +
		`<div class="nav-links"><a href="/">Home</a><a href="/blog">Blog</a></div>` +
		`<form method="post" action="/theme" class="theme-form"><button type="submit" class="theme-toggle" aria-label="Toggle theme">◐</button></form></nav>`)
	b.WriteString(`<main class="container">`)
	b.WriteString(body)
	b.WriteString(`</main></body></html>`)
	return b.String()
}

// PostDetail is the full article fragment: crumbs, tags, title, meta,
// optional hero image, sanitized markdown body, like control.
func PostDetail(p model.Post, liked bool) string {
	var b strings.Builder
	b.WriteString(`<div class="breadcrumbs"><a href="/">Home</a> / <a href="/blog">Blog</a> / `)
	fmt.Fprintf(&b, `<span>%s</span></div>`, esc(p.Title))
	fmt.Fprintf(&b, `<div class="post-tags">%s</div>`, TagPills(p.Tags, 0))
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(p.Title))
	fmt.Fprintf(&b, `<div class="post-meta">%s · %d views</div>`, FormatDate(p.CreatedAt), p.Views)
	if p.ImageURL != "" {
		fmt.Fprintf(&b, `<div class="post-hero"><img src="%s" alt="%s"></div>`, esc(p.ImageURL), esc(p.Title))
	}
	fmt.Fprintf(&b, `<article class="markdown-body">%s</article>`, Markdown(p.Content))
	likeCls := "like-btn"
	if liked {
		likeCls = "like-btn liked"
	}
	fmt.Fprintf(&b,
		`<form method="post" action="/post/like?id=%s"><button type="submit" class="%s">♥ <span class="like-count">%d</span></button></form>`,
		p.ID.Hex(), likeCls, len(p.Likes))
	return b.String()
}
