package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/stormcreate/stormblog/dto"
)

// UploadHandler stores post images on local disk, served back under
// /uploads. This fills the blob-store role; the returned URL is what
// the editor saves on the post.
type UploadHandler struct {
	Dir string
}

// Upload godoc
// @Summary      Upload a post image
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      201    {object}  dto.UploadResp
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "image file is required"})
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	// Timestamp plus a random suffix keeps names collision-free while
	// staying recognizable in the uploads directory.
	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.Dir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResp{URL: "/uploads/" + name})
}
