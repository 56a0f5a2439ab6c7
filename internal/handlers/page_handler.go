package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/configs"
	"github.com/stormcreate/stormblog/internal/feed"
	"github.com/stormcreate/stormblog/internal/middleware"
	"github.com/stormcreate/stormblog/internal/render"
	"github.com/stormcreate/stormblog/internal/repository"
	"github.com/stormcreate/stormblog/model"
)

// PageHandler wires the four page surfaces: each request fetches its
// data, seeds the controller where one applies, and renders.
type PageHandler struct {
	Posts    *repository.PostRepository
	Comments *repository.CommentRepository
	Reviews  *repository.ReviewRepository
	Admins   map[string]struct{}
}

func sendPage(c *fiber.Ctx, title, body string) error {
	c.Type("html", "utf-8")
	return c.SendString(render.Page(title, themeFrom(c), body))
}

// GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	posts := h.Posts.List(c.Context(), 3, "", "")
	reviews := h.Reviews.List(c.Context())

	sess := middleware.SessionFrom(c)
	signedIn := sess != nil
	displayName := ""
	if signedIn {
		displayName = sess.DisplayName
		if displayName == "" {
			displayName = sess.Email
		}
	}
	return sendPage(c, "Home", render.HomeBody(posts, reviews, signedIn, displayName))
}

// GET /blog?q=&tag=&page=
func (h *PageHandler) Blog(c *fiber.Ctx) error {
	posts := h.Posts.List(c.Context(), configs.DefaultPostFetch, "", "")

	ctl := feed.New(posts)
	ctl.SetQuery(strings.TrimSpace(c.Query("q")))
	ctl.SetTag(c.Query("tag"))
	ctl.SetPage(c.QueryInt("page", 1))

	pageURL := func(page int) string {
		v := url.Values{}
		if q := ctl.Query(); q != "" {
			v.Set("q", q)
		}
		if t := ctl.Tag(); t != "" {
			v.Set("tag", t)
		}
		if page > 1 {
			v.Set("page", fmt.Sprint(page))
		}
		if enc := v.Encode(); enc != "" {
			return "/blog?" + enc
		}
		return "/blog"
	}

	body := render.BlogBody(ctl.VisiblePage(), ctl.Tags(), ctl.Tag(), ctl.Query(), ctl.Page(), ctl.PageCount(), pageURL)
	return sendPage(c, "Blog", body)
}

// GET /post?id=...
func (h *PageHandler) Post(c *fiber.Ctx) error {
	idHex := c.Query("id")
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return sendPage(c, "Post not found", render.PostNotFoundBody())
	}

	post, err := h.Posts.Get(c.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return sendPage(c, "Post not found", render.PostNotFoundBody())
	}

	// Every detail-page load counts a view; failures are logged inside.
	h.Posts.IncrementViews(c.Context(), id)

	comments := h.Comments.ListByPost(c.Context(), id)
	related := h.relatedPosts(c, *post)
	liked := post.LikedBy(middleware.VisitorFrom(c))

	return sendPage(c, post.Title, render.PostBody(*post, liked, comments, related))
}

// relatedPosts looks up posts sharing the article's first tag,
// excluding the article itself, capped at two.
func (h *PageHandler) relatedPosts(c *fiber.Ctx, post model.Post) []model.Post {
	if len(post.Tags) == 0 {
		return nil
	}
	candidates := h.Posts.List(c.Context(), configs.RelatedPostFetch, post.Tags[0], "")
	related := make([]model.Post, 0, 2)
	for _, p := range candidates {
		if p.ID == post.ID {
			continue
		}
		related = append(related, p)
		if len(related) == 2 {
			break
		}
	}
	return related
}

// GET /admin
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	if sess == nil || !middleware.IsAdmin(sess.Email, h.Admins) {
		return sendPage(c, "Admin", render.AdminLoginBody())
	}

	posts := h.Posts.List(c.Context(), configs.AdminPostFetch, "", "")
	comments := h.Comments.ListAll(c.Context())
	reviews := h.Reviews.List(c.Context())
	draft := c.Cookies(draftCookie)

	return sendPage(c, "Admin", render.AdminBody(sess.Email, posts, comments, reviews, draft))
}
