package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/middleware"
	"sec-platform/internal/models"
	"sec-platform/internal/repository"
)

type CommentHandler struct {
	Repo *repository.CommentRepository
}

// Create godoc
// @Summary      Add a comment to a resource
// @Description  The author is taken from user_id in the body, falling back to
// @Description  the authenticated user when omitted.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        institutionId  path      string                true  "Institution ID"
// @Param        classId        path      string                true  "Class ID"
// @Param        resourceId     path      string                true  "Resource ID"
// @Param        body           body      dto.CreateCommentReq  true  "Comment payload"
// @Success      201            {object}  models.Comment
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
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

	var req dto.CreateCommentReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if strings.TrimSpace(req.Content) == "" {
		return respondErr(c, apperr.Validation("content is required"))
	}

	var authorID bson.ObjectID
	if req.UserID != "" {
		authorID, err = bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return respondErr(c, apperr.InvalidID(req.UserID))
		}
	} else if uid, ok := middleware.UIDObjectID(c); ok {
		authorID = uid
	} else {
		return respondErr(c, apperr.Validation("user_id is required"))
	}

	com := models.Comment{UserID: authorID, Content: req.Content}
	if err := h.Repo.Create(c.Context(), instID, classID, resourceID, &com); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}

// List godoc
// @Summary      List comments of a resource
// @Tags         comments
// @Produce      json
// @Param        institutionId  path     string  true  "Institution ID"
// @Param        classId        path     string  true  "Class ID"
// @Param        resourceId     path     string  true  "Resource ID"
// @Success      200            {array}  models.Comment
// @Failure      404            {object} dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
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
	comments, err := h.Repo.List(c.Context(), instID, classID, resourceID)
	if err != nil {
		return respondErr(c, err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

// Get godoc
// @Summary      Get one comment
// @Tags         comments
// @Produce      json
// @Param        institutionId  path      string  true  "Institution ID"
// @Param        classId        path      string  true  "Class ID"
// @Param        resourceId     path      string  true  "Resource ID"
// @Param        commentId      path      string  true  "Comment ID"
// @Success      200            {object}  models.Comment
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/comments/{commentId} [get]
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	ids, err := h.pathIDs(c)
	if err != nil {
		return respondErr(c, err)
	}
	com, err := h.Repo.Get(c.Context(), ids[0], ids[1], ids[2], ids[3])
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(com)
}

// Update godoc
// @Summary      Update a comment
// @Description  Only provided, non-null fields are changed.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        institutionId  path      string                true  "Institution ID"
// @Param        classId        path      string                true  "Class ID"
// @Param        resourceId     path      string                true  "Resource ID"
// @Param        commentId      path      string                true  "Comment ID"
// @Param        body           body      dto.UpdateCommentReq  true  "Fields to update"
// @Success      200            {object}  models.Comment
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/comments/{commentId} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	ids, err := h.pathIDs(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.UpdateCommentReq
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	fields, err := repository.CommentFields(req)
	if err != nil {
		return respondErr(c, err)
	}
	if len(fields) == 0 {
		return respondErr(c, apperr.Validation("no update data provided"))
	}

	com, err := h.Repo.Update(c.Context(), ids[0], ids[1], ids[2], ids[3], fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(com)
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Param        institutionId  path  string  true  "Institution ID"
// @Param        classId        path  string  true  "Class ID"
// @Param        resourceId     path  string  true  "Resource ID"
// @Param        commentId      path  string  true  "Comment ID"
// @Success      204  {string}  string  "no content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/institutions/{institutionId}/classes/{classId}/resources/{resourceId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	ids, err := h.pathIDs(c)
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.Repo.Delete(c.Context(), ids[0], ids[1], ids[2], ids[3]); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pathIDs parses the full 4-level id chain.
func (h *CommentHandler) pathIDs(c *fiber.Ctx) ([4]bson.ObjectID, error) {
	var ids [4]bson.ObjectID
	for i, name := range []string{"institutionId", "classId", "resourceId", "commentId"} {
		oid, err := paramID(c, name)
		if err != nil {
			return ids, err
		}
		ids[i] = oid
	}
	return ids, nil
}
