package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/dto"
	"github.com/stormcreate/stormblog/internal/middleware"
	"github.com/stormcreate/stormblog/internal/repository"
)

type LikeHandler struct {
	Posts *repository.PostRepository
}

// Toggle godoc
// @Summary      Toggle the visitor's like on a post
// @Description  Keyed on the anonymous visitor id; toggling twice restores the original state.
// @Tags         posts
// @Produce      json
// @Param        id  query     string  true  "Post ID (hex)"
// @Success      200 {object}  dto.ToggleLikeResp
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /post/like [post]
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}
	visitor := middleware.VisitorFrom(c)
	if visitor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "missing visitor id"})
	}

	liked, count, err := h.Posts.ToggleLike(c.Context(), id, visitor)
	if err != nil {
		return c.Status(writeStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if wantsJSON(c) {
		return c.JSON(dto.ToggleLikeResp{Liked: liked, LikeCount: count})
	}
	return redirectBack(c, "/post?id="+id.Hex())
}
