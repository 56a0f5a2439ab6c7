package render

import (
	"fmt"
	"strings"

	"github.com/stormcreate/stormblog/model"
)

// AdminLoginBody is shown to anonymous visitors and non-admin accounts.
func AdminLoginBody() string {
	return `<section class="admin-login"><h1>Admin</h1>` +
		`<form method="post" action="/api/auth/login" class="login-form">` +
		`<input type="email" name="email" required placeholder="Email">` +
		`<input type="password" name="password" required placeholder="Password">` +
		`<button type="submit">Sign in</button></form></section>`
}

// AdminBody: dashboard stats plus the three management tables.
func AdminBody(email string, posts []model.Post, comments []model.Comment, reviews []model.Review, draft string) string {
	var totalViews int64
	for _, p := range posts {
		totalViews += p.Views
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="admin"><header class="admin-header"><h1>Dashboard</h1><span class="admin-email">%s</span>`, esc(email))
	b.WriteString(`<form method="post" action="/api/auth/logout"><button type="submit">Sign out</button></form></header>`)

	fmt.Fprintf(&b, `<div class="stats"><div class="stat"><span>%d</span>Posts</div><div class="stat"><span>%d</span>Comments</div><div class="stat"><span>%d</span>Views</div></div>`,
		len(posts), len(comments), totalViews)

	b.WriteString(`<h2>Posts</h2>`)
	b.WriteString(adminEditor(draft))
	b.WriteString(`<table class="admin-table"><thead><tr><th>Title</th><th>Created</th><th>Views</th><th></th></tr></thead><tbody>`)
	if len(posts) == 0 {
		b.WriteString(`<tr><td colspan="4">No posts</td></tr>`)
	}
	for _, p := range posts {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%d</td><td>`, esc(p.Title), FormatDate(p.CreatedAt), p.Views)
		fmt.Fprintf(&b, `<form method="post" action="/api/admin/posts/%s/delete"><button type="submit" class="danger">Delete</button></form>`, p.ID.Hex())
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<h2>Comments</h2><table class="admin-table"><thead><tr><th>Author</th><th>Text</th><th>Created</th><th></th></tr></thead><tbody>`)
	if len(comments) == 0 {
		b.WriteString(`<tr><td colspan="4">No comments</td></tr>`)
	}
	for _, c := range comments {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>`, esc(c.Author), esc(truncate(c.Text, 80)), FormatDate(c.CreatedAt))
		fmt.Fprintf(&b, `<form method="post" action="/api/admin/comments/%s/delete"><button type="submit" class="danger">Delete</button></form>`, c.ID.Hex())
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<h2>Reviews</h2><table class="admin-table"><thead><tr><th>Author</th><th>Rating</th><th>Text</th><th>Created</th><th></th></tr></thead><tbody>`)
	if len(reviews) == 0 {
		b.WriteString(`<tr><td colspan="5">No reviews</td></tr>`)
	}
	for _, r := range reviews {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
			esc(r.UserName), Stars(r.Rating), esc(truncate(r.Text, 80)), FormatDate(r.CreatedAt))
		fmt.Fprintf(&b, `<form method="post" action="/api/admin/reviews/%s/delete"><button type="submit" class="danger">Delete</button></form>`, r.ID.Hex())
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table></section>`)
	return b.String()
}

// adminEditor is the create-post form; the content field is seeded
// from the unsaved draft, which is kept only while creating.
func adminEditor(draft string) string {
	var b strings.Builder
	b.WriteString(`<details class="editor"><summary>New post</summary>` +
		`<form method="post" action="/api/admin/posts" class="editor-form">` +
		`<input type="text" name="title" required placeholder="Title">` +
		`<input type="text" name="description" placeholder="Short description">` +
		`<input type="text" name="imageUrl" placeholder="Image URL">` +
		`<input type="text" name="tags" placeholder="Tags, comma separated">`)
	fmt.Fprintf(&b, `<textarea name="content" required placeholder="Markdown content">%s</textarea>`, esc(draft))
	b.WriteString(`<button type="submit">Publish</button></form></details>`)
	return b.String()
}
