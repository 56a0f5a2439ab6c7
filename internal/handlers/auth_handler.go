package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/stormcreate/stormblog/dto"
	"github.com/stormcreate/stormblog/internal/auth"
	"github.com/stormcreate/stormblog/internal/middleware"
	"github.com/stormcreate/stormblog/internal/repository"
)

type AuthHandler struct {
	Auth   *auth.Service
	Admins map[string]struct{}
}

func (h *AuthHandler) sessionResp(sess *auth.Session) dto.SessionResp {
	return dto.SessionResp{
		UserID:      sess.UserID,
		Email:       sess.Email,
		DisplayName: sess.DisplayName,
		AvatarURL:   sess.AvatarURL,
		Admin:       middleware.IsAdmin(sess.Email, h.Admins),
	}
}

func authStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredential):
		return fiber.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailInUse):
		return fiber.StatusConflict
	case errors.Is(err, auth.ErrNoActiveSession):
		return fiber.StatusUnauthorized
	case errors.Is(err, repository.ErrBackendUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// Login godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginReq  true  "Credentials"
// @Success      200   {object}  dto.SessionResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email and password are required"})
	}

	sess, token, err := h.Auth.SignIn(c.Context(), body.Email, body.Password)
	if err != nil {
		return c.Status(authStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	setSessionCookie(c, token)
	if wantsJSON(c) {
		return c.JSON(h.sessionResp(sess))
	}
	return redirectBack(c, "/")
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterReq  true  "New account"
// @Success      201   {object}  dto.SessionResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" || body.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email, password and displayName are required"})
	}

	sess, token, err := h.Auth.SignUp(c.Context(), body.Email, body.Password, body.DisplayName)
	if err != nil {
		return c.Status(authStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	setSessionCookie(c, token)
	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(h.sessionResp(sess))
	}
	return redirectBack(c, "/")
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.SignOut()
	clearSessionCookie(c)
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// UpdateProfile godoc
// @Summary      Update the signed-in user's display name
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.UpdateProfileReq  true  "Profile"
// @Success      200   {object}  dto.SessionResp
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/profile [post]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	var body dto.UpdateProfileReq
	if err := c.BodyParser(&body); err != nil || body.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "displayName is required"})
	}

	if err := h.Auth.UpdateDisplayName(c.Context(), sess, body.DisplayName); err != nil {
		return c.Status(authStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	// Re-issue the token so the cookie carries the new name.
	token, err := auth.IssueToken(h.Auth.Secret(), sess)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	setSessionCookie(c, token)
	if wantsJSON(c) {
		return c.JSON(h.sessionResp(sess))
	}
	return redirectBack(c, "/")
}

// Telegram godoc
// @Summary      Federated sign-in via the Telegram widget payload
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.TelegramAuthReq  true  "Widget payload"
// @Success      200   {object}  dto.SessionResp
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/telegram [post]
func (h *AuthHandler) Telegram(c *fiber.Ctx) error {
	var body dto.TelegramAuthReq
	if err := c.BodyParser(&body); err != nil {
		// Form posts carry the id as a string.
		if id, convErr := strconv.ParseInt(c.FormValue("id"), 10, 64); convErr == nil {
			body.ID = id
			body.FirstName = c.FormValue("first_name")
			body.LastName = c.FormValue("last_name")
			body.Username = c.FormValue("username")
			body.PhotoURL = c.FormValue("photo_url")
		}
	}
	if body.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "telegram id is required"})
	}

	ident := auth.TelegramIdentity{
		ID:        body.ID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Username:  body.Username,
		PhotoURL:  body.PhotoURL,
	}
	sess, token, err := h.Auth.FederatedSignIn(c.Context(), ident)
	if err != nil {
		return c.Status(authStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	setSessionCookie(c, token)
	if wantsJSON(c) {
		return c.JSON(h.sessionResp(sess))
	}
	return redirectBack(c, "/")
}
