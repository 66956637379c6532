package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

// fetchInstitution loads the whole institution document. All descendants are
// embedded, so any locate resolves with this single store access; the scans
// below are O(n) over the embedded sequences.
func fetchInstitution(ctx context.Context, col *mongo.Collection, id bson.ObjectID) (*models.Institution, error) {
	var inst models.Institution
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(apperr.KindInstitution, id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func locateClass(inst *models.Institution, classID bson.ObjectID) (*models.Class, error) {
	cls := inst.ClassByID(classID)
	if cls == nil {
		return nil, apperr.NotFound(apperr.KindClass, classID.Hex())
	}
	return cls, nil
}

func locateResource(cls *models.Class, resourceID bson.ObjectID) (*models.Resource, error) {
	res := cls.ResourceByID(resourceID)
	if res == nil {
		return nil, apperr.NotFound(apperr.KindResource, resourceID.Hex())
	}
	return res, nil
}

func locateComment(res *models.Resource, commentID bson.ObjectID) (*models.Comment, error) {
	com := res.CommentByID(commentID)
	if com == nil {
		return nil, apperr.NotFound(apperr.KindComment, commentID.Hex())
	}
	return com, nil
}
