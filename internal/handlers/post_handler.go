package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/dto"
	"github.com/stormcreate/stormblog/internal/repository"
	"github.com/stormcreate/stormblog/model"
)

// PostHandler owns the admin-side post mutations.
type PostHandler struct {
	Posts *repository.PostRepository
}

func writeStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrBackendUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// parsePostInput accepts either the JSON editor payload or the plain
// form, where tags arrive comma separated.
func parsePostInput(c *fiber.Ctx) dto.PostInput {
	var body dto.PostInput
	if wantsJSON(c) {
		_ = c.BodyParser(&body)
		return body
	}
	body.Title = strings.TrimSpace(c.FormValue("title"))
	body.Description = strings.TrimSpace(c.FormValue("description"))
	body.Content = strings.TrimSpace(c.FormValue("content"))
	body.ImageURL = strings.TrimSpace(c.FormValue("imageUrl"))
	body.Tags = splitTags(c.FormValue("tags"))
	return body
}

func splitTags(csv string) []string {
	var tags []string
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Create godoc
// @Summary      Create a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.PostInput  true  "Post payload"
// @Success      201   {object}  dto.CreatePostResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/admin/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	body := parsePostInput(c)
	if body.Title == "" || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "title and content are required"})
	}

	post := &model.Post{
		Title:       body.Title,
		Description: body.Description,
		Content:     body.Content,
		ImageURL:    body.ImageURL,
		Tags:        body.Tags,
	}
	id, err := h.Posts.Create(c.Context(), post)
	if err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	clearDraft(c)
	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(dto.CreatePostResp{ID: id.Hex()})
	}
	return redirectBack(c, "/admin")
}

// Update godoc
// @Summary      Update a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string         true  "Post ID (hex)"
// @Param        data     body      dto.PostInput  true  "Post payload"
// @Success      204      "updated"
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/admin/posts/{post_id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}
	body := parsePostInput(c)
	if body.Title == "" || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "title and content are required"})
	}

	if err := h.Posts.Update(c.Context(), id, body.Title, body.Description, body.Content, body.ImageURL, body.Tags); err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return redirectBack(c, "/admin")
}

// Delete removes the post only; its comments stay behind (no cascade).
// POST /api/admin/posts/:post_id/delete
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}
	if err := h.Posts.Delete(c.Context(), id); err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return redirectBack(c, "/admin")
}

// SaveDraft persists the editor's unsaved body while creating a post.
// POST /api/admin/draft
func (h *PostHandler) SaveDraft(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     draftCookie,
		Value:    c.FormValue("content"),
		Path:     "/admin",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

func clearDraft(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     draftCookie,
		Value:    "",
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})
}
