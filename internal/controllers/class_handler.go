package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

type ClassHandler struct {
	Repo *repository.ClassRepository
}

// Create godoc
// @Summary      Add a class to an institution
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string              true  "Institution ID"
// @Param        body           body      dto.CreateClassReq  true  "Class payload"
// @Success      201            {object}  models.Class
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes [post]
func (h *ClassHandler) Create(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.CreateClassReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if req.Name == "" || req.TeacherID == "" {
		return respondErr(c, apperr.Validation("name and teacher_id are required"))
	}

	teacherID, err := bson.ObjectIDFromHex(req.TeacherID)
	if err != nil {
		return respondErr(c, apperr.InvalidID(req.TeacherID))
	}
	studentIDs := make([]bson.ObjectID, 0, len(req.StudentIDs))
	for _, sid := range req.StudentIDs {
		oid, err := bson.ObjectIDFromHex(sid)
		if err != nil {
			return respondErr(c, apperr.InvalidID(sid))
		}
		studentIDs = append(studentIDs, oid)
	}

	cls := models.Class{Name: req.Name, TeacherID: teacherID, StudentIDs: studentIDs}
	if err := h.Repo.Create(c.Context(), instID, &cls); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cls)
}

// List godoc
// @Summary      List classes of an institution
// @Tags         classes
// @Produce      json
// @Param        institutionId  path     string  true  "Institution ID"
// @Success      200            {array}  models.Class
// @Failure      404            {object} dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes [get]
func (h *ClassHandler) List(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classes, err := h.Repo.List(c.Context(), instID)
	if err != nil {
		return respondErr(c, err)
	}
	if classes == nil {
		classes = []models.Class{}
	}
	return c.JSON(classes)
}

// Get godoc
// @Summary      Get one class
// @Tags         classes
// @Produce      json
// @Param        institutionId  path      string  true  "Institution ID"
// @Param        classId        path      string  true  "Class ID"
// @Success      200            {object}  models.Class
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId} [get]
func (h *ClassHandler) Get(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	cls, err := h.Repo.Get(c.Context(), instID, classID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(cls)
}

// Update godoc
// @Summary      Update a class
// @Description  Only provided, non-null fields are changed.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string              true  "Institution ID"
// @Param        classId        path      string              true  "Class ID"
// @Param        body           body      dto.UpdateClassReq  true  "Fields to update"
// @Success      200            {object}  models.Class
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId} [put]
func (h *ClassHandler) Update(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.UpdateClassReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	fields, err := repository.ClassFields(req)
	if err != nil {
		return respondErr(c, err)
	}
	if len(fields) == 0 {
		return respondErr(c, apperr.Validation("no update data provided"))
	}

	cls, err := h.Repo.Update(c.Context(), instID, classID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(cls)
}

// Delete godoc
// @Summary      Delete a class
// @Tags         classes
// @Param        institutionId  path  string  true  "Institution ID"
// @Param        classId        path  string  true  "Class ID"
// @Success      204  {string}  string  "no content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId} [delete]
func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	instID, err := paramID(c, "institutionId")
	if err != nil {
		return respondErr(c, err)
	}
	classID, err := paramID(c, "classId")
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Delete(c.Context(), instID, classID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
