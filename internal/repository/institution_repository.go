package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sec-platform/config"
	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

type InstitutionRepository struct {
	Col *mongo.Collection
}

func NewInstitutionRepository(db *mongo.Database) *InstitutionRepository {
	return &InstitutionRepository{Col: db.Collection("institutions")}
}

func (r *InstitutionRepository) Create(ctx context.Context, inst *models.Institution) error {
	inst.ID = bson.NewObjectID()
	ensureInstitutionArrays(inst)
	_, err := r.Col.InsertOne(ctx, inst)
	return err
}

// ensureInstitutionArrays stores the embedded sequence as a real array even
// when empty. Filtered positional updates require the field to exist.
func ensureInstitutionArrays(inst *models.Institution) {
	if inst.Classes == nil {
		inst.Classes = []models.Class{}
	}
}

func (r *InstitutionRepository) List(ctx context.Context) ([]models.Institution, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetLimit(config.MaxListResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var insts []models.Institution
	if err := cur.All(ctx, &insts); err != nil {
		return nil, err
	}
	return insts, nil
}

func (r *InstitutionRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Institution, error) {
	return fetchInstitution(ctx, r.Col, id)
}

func (r *InstitutionRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*models.Institution, error) {
	res := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var inst models.Institution
	err := res.Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(apperr.KindInstitution, id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *InstitutionRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound(apperr.KindInstitution, id.Hex())
	}
	return nil
}

// InstitutionFields filters a partial update down to the explicitly provided,
// non-nil fields.
func InstitutionFields(req dto.UpdateInstitutionReq) (bson.M, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Location != nil {
		loc, err := LocationFromReq(*req.Location)
		if err != nil {
			return nil, err
		}
		fields["location"] = loc
	}
	return fields, nil
}

func LocationFromReq(req dto.LocationReq) (*models.Location, error) {
	if len(req.Coordinates) != 2 {
		return nil, apperr.Validation("location coordinates must be a [longitude, latitude] pair")
	}
	return &models.Location{
		Department:  req.Department,
		Coordinates: req.Coordinates,
	}, nil
}
