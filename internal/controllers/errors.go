package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
)

// respondErr maps the error taxonomy onto HTTP statuses in one place.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperr.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperr.IsInvalidID(err), apperr.IsValidation(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrDuplicateEmail):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	raw := c.Params(name)
	oid, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, apperr.InvalidID(raw)
	}
	return oid, nil
}
