package controllers

import (
	"github.com/gofiber/fiber/v2"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

type InstitutionHandler struct {
	Repo *repository.InstitutionRepository
}

// Create godoc
// @Summary      Create an educational institution
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInstitutionReq  true  "Institution payload"
// @Success      201   {object}  models.Institution
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/institutions [post]
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInstitutionReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if req.Name == "" || req.Address == "" {
		return respondErr(c, apperr.Validation("name and address are required"))
	}

	inst := models.Institution{Name: req.Name, Address: req.Address}
	if req.Location != nil {
		loc, err := repository.LocationFromReq(*req.Location)
		if err != nil {
			return respondErr(c, err)
		}
		inst.Location = loc
	}

	if err := h.Repo.Create(c.Context(), &inst); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inst)
}

// List godoc
// @Summary      List educational institutions
// @Tags         institutions
// @Produce      json
// @Success      200  {array}  models.Institution
// @Router       /api/v1/institutions [get]
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	insts, err := h.Repo.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	if insts == nil {
		insts = []models.Institution{}
	}
	return c.JSON(insts)
}

// Get godoc
// @Summary      Get one institution
// @Tags         institutions
// @Produce      json
// @Param        institutionId  path      string  true  "Institution ID"
// @Success      200            {object}  models.Institution
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId} [get]
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	inst, err := h.Repo.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(inst)
}

// Update godoc
// @Summary      Update an institution
// @Description  Only provided, non-null fields are changed.
// @Tags         institutions
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string                    true  "Institution ID"
// @Param        body           body      dto.UpdateInstitutionReq  true  "Fields to update"
// @Success      200            {object}  models.Institution
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId} [put]
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.UpdateInstitutionReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	fields, err := repository.InstitutionFields(req)
	if err != nil {
		return respondErr(c, err)
	}
	if len(fields) == 0 {
		return respondErr(c, apperr.Validation("no update data provided"))
	}

	inst, err := h.Repo.Update(c.Context(), id, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(inst)
}

// Delete godoc
// @Summary      Delete an institution
// @Tags         institutions
// @Param        institutionId  path  string  true  "Institution ID"
// @Success      204  {string}  string  "no content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId} [delete]
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
