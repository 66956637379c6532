package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

type UserHandler struct {
	Repo *repository.UserRepository
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserReq  true  "User payload"
// @Success      201   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	u, err := userFromCreateReq(req)
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Create(c.Context(), u); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Repo.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// Get godoc
// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondErr(c, err)
	}
	u, err := h.Repo.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(u)
}

// Update godoc
// @Summary      Update a user
// @Description  Only provided, non-null fields are changed; a new password is re-hashed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      dto.UpdateUserReq  true  "Fields to update"
// @Success      200   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.UpdateUserReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return respondErr(c, err)
		}
		hashed := string(hash)
		req.Password = &hashed
	}
	fields, err := repository.UserFields(req)
	if err != nil {
		return respondErr(c, err)
	}
	if len(fields) == 0 {
		return respondErr(c, apperr.Validation("no update data provided"))
	}

	u, err := h.Repo.Update(c.Context(), id, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(u)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Param        id   path  string  true  "User ID"
// @Success      204  {string}  string  "no content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func userFromCreateReq(req dto.CreateUserReq) (*models.User, error) {
	if req.Name.FirstName == "" || req.Name.LastName == "" {
		return nil, apperr.Validation("first_name and last_name are required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password is required")
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperr.Validation("unknown role %q", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName},
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		BirthDate:    req.BirthDate,
	}
	if req.InstitutionID != nil {
		oid, err := bson.ObjectIDFromHex(*req.InstitutionID)
		if err != nil {
			return nil, apperr.InvalidID(*req.InstitutionID)
		}
		u.InstitutionID = &oid
	}
	return u, nil
}
