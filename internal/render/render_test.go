package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormcreate/stormblog/model"
)

func countFilled(s string) int {
	return strings.Count(s, `star filled`)
}

func countIndicators(s string) int {
	return strings.Count(s, `fa-star`)
}

func TestStars(t *testing.T) {
	for r := 0; r <= 5; r++ {
		out := Stars(r)
		assert.Equal(t, 5, countIndicators(out), "rating %d", r)
		assert.Equal(t, r, countFilled(out), "rating %d", r)
	}
}

func TestStarsClamp(t *testing.T) {
	assert.Equal(t, 0, countFilled(Stars(-3)))
	assert.Equal(t, 5, countFilled(Stars(9)))
}

func TestStarsOrder(t *testing.T) {
	out := Stars(3)
	// The three filled indicators come before both empty ones.
	firstEmpty := strings.Index(out, `"fas fa-star star"`)
	lastFilled := strings.LastIndex(out, `star filled`)
	require.NotEqual(t, -1, firstEmpty)
	require.NotEqual(t, -1, lastFilled)
	assert.Less(t, lastFilled, firstEmpty)
}

func TestCommentCardEscapesUntrustedText(t *testing.T) {
	c := model.Comment{
		Author:    `<script>alert("x")</script>`,
		Text:      `hello <img src=x onerror=pwn()>`,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	out := CommentCard(c)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<img src=x")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestReviewCardEscapesBody(t *testing.T) {
	r := model.Review{UserName: "<b>bold</b>", Text: "<i>sly</i>", Rating: 4}
	out := ReviewCard(r)
	assert.NotContains(t, out, "<b>bold</b>")
	assert.NotContains(t, out, "<i>sly</i>")
	assert.Equal(t, 4, countFilled(out))
}

func TestMarkdownSanitizesInjection(t *testing.T) {
	out := Markdown("**hi** <script>alert(1)</script>")
	assert.Contains(t, out, "<strong>hi</strong>")
	assert.NotContains(t, out, "<script")
}

func TestPreview(t *testing.T) {
	withDesc := model.Post{Description: "short take", Content: strings.Repeat("x", 500)}
	assert.Equal(t, "short take", Preview(withDesc))

	long := model.Post{Content: strings.Repeat("ы", 150)}
	got := Preview(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, 101, len([]rune(got)))
}

func TestPagination(t *testing.T) {
	url := func(p int) string { return fmt.Sprintf("/blog?page=%d", p) }

	assert.Empty(t, Pagination(1, 1, url))
	assert.Empty(t, Pagination(1, 0, url))

	out := Pagination(2, 3, url)
	assert.Equal(t, 3, strings.Count(out, "page-btn"))
	assert.Contains(t, out, `class="page-btn active" href="/blog?page=2"`)
}

func TestPostCardLinksAndEscapes(t *testing.T) {
	p := model.Post{
		Title:     `Fast & "Loose"`,
		Content:   "body",
		Tags:      []string{"go", "perf", "hidden"},
		CreatedAt: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	out := PostCard(p)
	assert.Contains(t, out, "/post?id="+p.ID.Hex())
	assert.Contains(t, out, "Fast &amp; &#34;Loose&#34;")
	// Cards show at most two tags.
	assert.Contains(t, out, ">go<")
	assert.Contains(t, out, ">perf<")
	assert.NotContains(t, out, ">hidden<")
}

func TestPageShellCarriesTheme(t *testing.T) {
	out := Page("Blog", "dark", "<p>x</p>")
	assert.Contains(t, out, `class="dark"`)
	// Unknown themes fall back to light.
	assert.Contains(t, Page("Blog", "solarized", ""), `class="light"`)
}
