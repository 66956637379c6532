package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

type ClassRepository struct {
	Col *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{Col: db.Collection("institutions")}
}

// Create appends the class to the institution's embedded sequence. The id is
// allocated here; any client-supplied id never reaches this point.
func (r *ClassRepository) Create(ctx context.Context, instID bson.ObjectID, cls *models.Class) error {
	cls.ID = bson.NewObjectID()
	ensureClassArrays(cls)

	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID},
		bson.M{"$push": bson.M{"classes": cls}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(apperr.KindInstitution, instID.Hex())
	}
	return nil
}

// ensureClassArrays stores the embedded sequences as real arrays even when
// empty, so the filtered positional updates one level down always find the
// field on the element.
func ensureClassArrays(cls *models.Class) {
	if cls.StudentIDs == nil {
		cls.StudentIDs = []bson.ObjectID{}
	}
	if cls.Resources == nil {
		cls.Resources = []models.Resource{}
	}
}

func (r *ClassRepository) List(ctx context.Context, instID bson.ObjectID) ([]models.Class, error) {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return nil, err
	}
	return inst.Classes, nil
}

func (r *ClassRepository) Get(ctx context.Context, instID, classID bson.ObjectID) (*models.Class, error) {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return nil, err
	}
	return locateClass(inst, classID)
}

// Update applies the patch to the one array element matching classID via an
// array filter, then rereads the class for the response.
func (r *ClassRepository) Update(ctx context.Context, instID, classID bson.ObjectID, fields bson.M) (*models.Class, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID},
		bson.M{"$set": prefixFields("classes.$[cls].", fields)},
		options.UpdateOne().SetArrayFilters([]interface{}{bson.M{"cls._id": classID}}),
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, r.missAt(ctx, instID, classID)
	}
	return r.Get(ctx, instID, classID)
}

func (r *ClassRepository) Delete(ctx context.Context, instID, classID bson.ObjectID) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID},
		bson.M{"$pull": bson.M{"classes": bson.M{"_id": classID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(apperr.KindInstitution, instID.Hex())
	}
	if res.ModifiedCount == 0 {
		return apperr.NotFound(apperr.KindClass, classID.Hex())
	}
	return nil
}

// missAt names the deepest level that failed to resolve after a zero-match
// update.
func (r *ClassRepository) missAt(ctx context.Context, instID, classID bson.ObjectID) error {
	inst, err := fetchInstitution(ctx, r.Col, instID)
	if err != nil {
		return err
	}
	if _, err := locateClass(inst, classID); err != nil {
		return err
	}
	return apperr.NotFound(apperr.KindClass, classID.Hex())
}

// ClassFields filters and coerces a partial class update: nil fields are
// dropped, user references converted to the store key type.
func ClassFields(req dto.UpdateClassReq) (bson.M, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.TeacherID != nil {
		oid, err := parseID(*req.TeacherID)
		if err != nil {
			return nil, err
		}
		fields["teacher_id"] = oid
	}
	if req.StudentIDs != nil {
		oids, err := parseIDs(*req.StudentIDs)
		if err != nil {
			return nil, err
		}
		fields["student_ids"] = oids
	}
	return fields, nil
}
