package controllers

import (
	"github.com/gofiber/fiber/v2"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

type ResourceHandler struct {
	Repo *repository.ResourceRepository
}

// Create godoc
// @Summary      Add a resource to a class
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string                 true  "Institution ID"
// @Param        classId        path      string                 true  "Class ID"
// @Param        body           body      dto.CreateResourceReq  true  "Resource payload"
// @Success      201            {object}  models.Resource
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.CreateResourceReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if req.Title == "" {
		return respondErr(c, apperr.Validation("title is required"))
	}
	resType := models.ResourceType(req.Type)
	if !resType.Valid() {
		return respondErr(c, apperr.Validation("unknown resource type %q", req.Type))
	}

	res := models.Resource{Title: req.Title, Type: resType}
	if err := h.Repo.Create(c.Context(), instID, classID, &res); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      List resources of a class
// @Tags         resources
// @Produce      json
// @Param        institutionId  path     string  true  "Institution ID"
// @Param        classId        path     string  true  "Class ID"
// @Success      200            {array}  models.Resource
// @Failure      404            {object} dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	resources, err := h.Repo.List(c.Context(), instID, classID)
	if err != nil {
		return respondErr(c, err)
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	return c.JSON(resources)
}

// Get godoc
// @Summary      Get one resource
// @Tags         resources
// @Produce      json
// @Param        institutionId  path      string  true  "Institution ID"
// @Param        classId        path      string  true  "Class ID"
// @Param        resourceId     path      string  true  "Resource ID"
// @Success      200            {object}  models.Resource
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId} [get]
func (h *ResourceHandler) Get(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	resourceID, err := paramID(c, "resourceId")
	if err != nil {
		return respondErr(c, err)
	}
	res, err := h.Repo.Get(c.Context(), instID, classID, resourceID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Update a resource
// @Description  Only provided, non-null fields are changed.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string                 true  "Institution ID"
// @Param        classId        path      string                 true  "Class ID"
// @Param        resourceId     path      string                 true  "Resource ID"
// @Param        body           body      dto.UpdateResourceReq  true  "Fields to update"
// @Success      200            {object}  models.Resource
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	resourceID, err := paramID(c, "resourceId")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.UpdateResourceReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	fields, err := repository.ResourceFields(req)
	if err != nil {
		return respondErr(c, err)
	}
	if len(fields) == 0 {
		return respondErr(c, apperr.Validation("no update data provided"))
	}

	res, err := h.Repo.Update(c.Context(), instID, classID, resourceID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete a resource
// @Tags         resources
// @Param        institutionId  path  string  true  "Institution ID"
// @Param        classId        path  string  true  "Class ID"
// @Param        resourceId     path  string  true  "Resource ID"
// @Success      204  {string}  string  "no content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	resourceID, err := paramID(c, "resourceId")
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Delete(c.Context(), instID, classID, resourceID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
