package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

type ResourceRepository struct {
	Col *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{Col: db.Collection("institutions")}
}

func (r *ResourceRepository) Create(ctx context.Context, instID, classID bson.ObjectID, res *models.Resource) error {
	res.ID = bson.NewObjectID()
	res.CreatedAt = time.Now().UTC()
	ensureResourceArrays(res)

	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID},
		bson.M{"$push": bson.M{"classes.$[cls].resources": res}},
		options.UpdateOne().SetArrayFilters([]interface{}{bson.M{"cls._id": classID}}),
	)
	if err != nil {
		return err
	}
	if upd.MatchedCount == 0 {
		return r.missAt(ctx, instID, classID, bson.NilObjectID)
	}
	return nil
}

// ensureResourceArrays stores file_ids and comments as real arrays even when
// empty. A $set through comments.$[com] on a missing comments field is a
// write error, not a zero-element match.
func ensureResourceArrays(res *models.Resource) {
	if res.FileIDs == nil {
		res.FileIDs = []bson.ObjectID{}
	}
	if res.Comments == nil {
		res.Comments = []models.Comment{}
	}
}

func (r *ResourceRepository) List(ctx context.Context, instID, classID bson.ObjectID) ([]models.Resource, error) {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return nil, err
	}
	cls, err := locateClass(inst, classID)
	if err != nil {
		return nil, err
	}
	return cls.Resources, nil
}

func (r *ResourceRepository) Get(ctx context.Context, instID, classID, resourceID bson.ObjectID) (*models.Resource, error) {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return nil, err
	}
	cls, err := locateClass(inst, classID)
	if err != nil {
		return nil, err
	}
	return locateResource(cls, resourceID)
}

func (r *ResourceRepository) Update(ctx context.Context, instID, classID, resourceID bson.ObjectID, fields bson.M) (*models.Resource, error) {
	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID, "classes.resources._id": resourceID},
		bson.M{"$set": prefixFields("classes.$[cls].resources.$[res].", fields)},
		options.UpdateOne().SetArrayFilters([]interface{}{
			bson.M{"cls._id": classID},
			bson.M{"res._id": resourceID},
		}),
	)
	if err != nil {
		return nil, err
	}
	if upd.MatchedCount == 0 {
		return nil, r.missAt(ctx, instID, classID, resourceID)
	}
	return r.Get(ctx, instID, classID, resourceID)
}

func (r *ResourceRepository) Delete(ctx context.Context, instID, classID, resourceID bson.ObjectID) error {
	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID},
		bson.M{"$pull": bson.M{"classes.$[cls].resources": bson.M{"_id": resourceID}}},
		options.UpdateOne().SetArrayFilters([]interface{}{bson.M{"cls._id": classID}}),
	)
	if err != nil {
		return err
	}
	if upd.MatchedCount == 0 || upd.ModifiedCount == 0 {
		return r.missAt(ctx, instID, classID, resourceID)
	}
	return nil
}

// AttachFiles appends uploaded blob ids to the resource, preserving upload
// order.
func (r *ResourceRepository) AttachFiles(ctx context.Context, instID, classID, resourceID bson.ObjectID, fileIDs []bson.ObjectID) error {
	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID, "classes.resources._id": resourceID},
		bson.M{"$push": bson.M{"classes.$[cls].resources.$[res].file_ids": bson.M{"$each": fileIDs}}},
		options.UpdateOne().SetArrayFilters([]interface{}{
			bson.M{"cls._id": classID},
			bson.M{"res._id": resourceID},
		}),
	)
	if err != nil {
		return err
	}
	// The resource id may live under a different class, in which case the
	// document still matches but no element does.
	if upd.MatchedCount == 0 || upd.ModifiedCount == 0 {
		return r.missAt(ctx, instID, classID, resourceID)
	}
	return nil
}

func (r *ResourceRepository) missAt(ctx context.Context, instID, classID, resourceID bson.ObjectID) error {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return err
	}
	cls, err := locateClass(inst, classID)
	if err != nil {
		return err
	}
	if resourceID.IsZero() {
		return apperr.NotFound(apperr.KindClass, classID.Hex())
	}
	if _, err := locateResource(cls, resourceID); err != nil {
		return err
	}
	return apperr.NotFound(apperr.KindResource, resourceID.Hex())
}

func ResourceFields(req dto.UpdateResourceReq) (bson.M, error) {
	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Type != nil {
		t := models.ResourceType(*req.Type)
		if !t.Valid() {
			return nil, apperr.Validation("unknown resource type %q", *req.Type)
		}
		fields["type"] = t
	}
	return fields, nil
}
