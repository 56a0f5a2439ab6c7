package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/dto"
	"github.com/stormcreate/stormblog/internal/middleware"
	"github.com/stormcreate/stormblog/internal/repository"
)

type ReviewHandler struct {
	Reviews *repository.ReviewRepository
}

// List godoc
// @Summary      List reviews, newest first
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  model.Review
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Reviews.List(c.Context()))
}

// Create godoc
// @Summary      Submit a review as the signed-in user
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreateReviewReq  true  "Review"
// @Success      201   {object}  model.Review
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "sign in to leave a review"})
	}

	var body dto.CreateReviewReq
	if wantsJSON(c) {
		_ = c.BodyParser(&body)
	} else {
		body.Text = c.FormValue("text")
		body.Rating, _ = strconv.Atoi(c.FormValue("rating"))
	}
	body.Text = strings.TrimSpace(body.Text)
	if body.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "text is required"})
	}
	// The form owns the rating range; clamp rather than reject.
	if body.Rating < 1 {
		body.Rating = 1
	}
	if body.Rating > 5 {
		body.Rating = 5
	}

	userName := sess.DisplayName
	if userName == "" {
		userName = strings.SplitN(sess.Email, "@", 2)[0]
	}
	review, err := h.Reviews.Create(c.Context(), sess.UserID, userName, body.Text, body.Rating)
	if err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(review)
	}
	return redirectBack(c, "/")
}

// Delete is admin-only moderation.
// POST /api/admin/reviews/:review_id/delete
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("review_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid review id"})
	}
	if err := h.Reviews.Delete(c.Context(), id); err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return redirectBack(c, "/admin")
}
