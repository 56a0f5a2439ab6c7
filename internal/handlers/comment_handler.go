package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/dto"
	"github.com/stormcreate/stormblog/internal/repository"
)

type CommentHandler struct {
	Comments *repository.CommentRepository
}

// List godoc
// @Summary      List a post's comments, newest first
// @Tags         comments
// @Produce      json
// @Param        post_id  path      string  true  "Post ID (hex)"
// @Success      200      {array}   model.Comment
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/posts/{post_id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}
	return c.JSON(h.Comments.ListByPost(c.Context(), postID))
}

// Create godoc
// @Summary      Add a comment as any visitor
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        post_id  path      string                true  "Post ID (hex)"
// @Param        data     body      dto.CreateCommentReq  true  "Comment"
// @Success      201      {object}  model.Comment
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/posts/{post_id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	var body dto.CreateCommentReq
	if wantsJSON(c) {
		_ = c.BodyParser(&body)
	} else {
		body.Author = c.FormValue("author")
		body.Text = c.FormValue("text")
	}
	body.Author = strings.TrimSpace(body.Author)
	body.Text = strings.TrimSpace(body.Text)
	if body.Author == "" || body.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "author and text are required"})
	}

	comment, err := h.Comments.Create(c.Context(), postID, body.Author, body.Text)
	if err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
	return redirectBack(c, "/post?id="+postID.Hex())
}

// Delete is admin-only moderation.
// POST /api/admin/comments/:comment_id/delete
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("comment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid comment id"})
	}
	if err := h.Comments.Delete(c.Context(), id); err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return redirectBack(c, "/admin")
}
