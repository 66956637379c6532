package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/middleware"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	Repo      *repository.UserRepository
	JWTSecret string
}

// SignUp godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignUpReq  true  "Sign-up payload"
// @Success      201   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	u, err := userFromCreateReq(dto.CreateUserReq{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return respondErr(c, err)
	}

	// The unique email index closes the race this check leaves open.
	existing, err := h.Repo.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return respondErr(c, err)
	}
	if existing != nil {
		return respondErr(c, apperr.ErrDuplicateEmail)
	}

	if err := h.Repo.Create(c.Context(), u); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// SignIn godoc
// @Summary      Authenticate a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignInReq  true  "Credentials"
// @Success      200   {object}  dto.SignInResp
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	u, err := h.Repo.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return respondErr(c, err)
	}
	if u == nil {
		return respondErr(c, apperr.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return respondErr(c, apperr.ErrInvalidCredentials)
	}

	token, err := middleware.GenerateToken(h.JWTSecret, u.ID.Hex(), tokenTTL)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(dto.SignInResp{
		Token:  token,
		UserID: u.ID.Hex(),
		Name:   displayName(u),
		Role:   string(u.Role),
	})
}

func displayName(u *models.User) string {
	return strings.TrimSpace(u.Name.FirstName + " " + u.Name.LastName)
}
