package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sec-platform/config"
	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.ID = bson.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.Col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.ErrDuplicateEmail
	}
	return err
}

// FindByEmail returns (nil, nil) when no user carries the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetLimit(config.MaxListResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(apperr.KindUser, id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*models.User, error) {
	fields["updated_at"] = time.Now().UTC()

	res := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var u models.User
	err := res.Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(apperr.KindUser, id.Hex())
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound(apperr.KindUser, id.Hex())
	}
	return nil
}

// UserFields filters and coerces a partial user update. The password, when
// present, must already be hashed by the caller.
func UserFields(req dto.UpdateUserReq) (bson.M, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName}
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, apperr.Validation("unknown role %q", *req.Role)
		}
		fields["role"] = role
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
	}
	if req.InstitutionID != nil {
		oid, err := parseID(*req.InstitutionID)
		if err != nil {
			return nil, err
		}
		fields["educational_institution_id"] = oid
	}
	return fields, nil
}
