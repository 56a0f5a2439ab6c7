package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/model"
)

func makePosts(n int) []model.Post {
	posts := make([]model.Post, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range posts {
		posts[i] = model.Post{
			ID:        bson.NewObjectID(),
			Title:     fmt.Sprintf("Post %d", i),
			Content:   fmt.Sprintf("content number %d", i),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return posts
}

func TestPaginationThirteenPosts(t *testing.T) {
	posts := makePosts(13)
	ctl := New(posts)

	require.Equal(t, 3, ctl.PageCount())

	page1 := ctl.VisiblePage()
	require.Len(t, page1, 6)
	assert.Equal(t, posts[0].ID, page1[0].ID)
	assert.Equal(t, posts[5].ID, page1[5].ID)

	ctl.SetPage(3)
	page3 := ctl.VisiblePage()
	require.Len(t, page3, 1)
	assert.Equal(t, posts[12].ID, page3[0].ID)
}

func TestPagesConcatenateToFilteredSet(t *testing.T) {
	posts := makePosts(13)
	ctl := New(posts)

	var all []model.Post
	for p := 1; p <= ctl.PageCount(); p++ {
		ctl.SetPage(p)
		all = append(all, ctl.VisiblePage()...)
	}
	require.Len(t, all, len(posts))
	for i := range posts {
		assert.Equal(t, posts[i].ID, all[i].ID)
	}
}

func TestSetPageClamps(t *testing.T) {
	ctl := New(makePosts(13))

	ctl.SetPage(0)
	assert.Equal(t, 1, ctl.Page())

	ctl.SetPage(99)
	assert.Equal(t, 3, ctl.Page())

	empty := New(nil)
	empty.SetPage(5)
	assert.Equal(t, 1, empty.Page())
	assert.Empty(t, empty.VisiblePage())
}

func TestTagFilter(t *testing.T) {
	posts := makePosts(6)
	posts[0].Tags = []string{"go", "cache"}
	posts[2].Tags = []string{"go"}
	posts[4].Tags = []string{"rust"}
	ctl := New(posts)

	ctl.SetTag("go")
	filtered := ctl.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, posts[0].ID, filtered[0].ID)
	assert.Equal(t, posts[2].ID, filtered[1].ID)

	// Clearing the tag restores the full set, order preserved.
	ctl.SetTag("")
	require.Len(t, ctl.Filtered(), len(posts))
	for i, p := range ctl.Filtered() {
		assert.Equal(t, posts[i].ID, p.ID)
	}
}

func TestQueryFilterIsCaseInsensitiveSubset(t *testing.T) {
	posts := makePosts(5)
	posts[1].Title = "All About Caches"
	posts[3].Content = "a deep dive into CACHE eviction"
	ctl := New(posts)

	ctl.SetQuery("cache")
	filtered := ctl.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, posts[1].ID, filtered[0].ID)
	assert.Equal(t, posts[3].ID, filtered[1].ID)
}

func TestTagAndQueryCombine(t *testing.T) {
	posts := makePosts(8)
	posts[0].Tags = []string{"go"}
	posts[0].Title = "Cache lines in Go"
	posts[1].Tags = []string{"go"}
	posts[2].Title = "Cache eviction"
	ctl := New(posts)

	ctl.SetTag("go")
	ctl.SetQuery("cache")

	filtered := ctl.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, posts[0].ID, filtered[0].ID)
}

func TestFilterChangeResetsPage(t *testing.T) {
	ctl := New(makePosts(13))
	ctl.SetPage(3)
	require.Equal(t, 3, ctl.Page())

	ctl.SetQuery("post")
	assert.Equal(t, 1, ctl.Page())

	ctl.SetPage(2)
	ctl.SetTag("")
	assert.Equal(t, 1, ctl.Page())
}

func TestTagUniverse(t *testing.T) {
	posts := makePosts(4)
	posts[0].Tags = []string{"go", "cache"}
	posts[1].Tags = []string{"cache", "db"}
	posts[3].Tags = []string{"go"}
	ctl := New(posts)

	assert.Equal(t, []string{"go", "cache", "db"}, ctl.Tags())

	// The universe tracks the full set, not the filtered view.
	ctl.SetTag("db")
	assert.Equal(t, []string{"go", "cache", "db"}, ctl.Tags())
}
