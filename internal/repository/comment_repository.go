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

// CommentRepository mutates the deepest embedded level: a comment inside a
// resource inside a class inside an institution document.
type CommentRepository struct {
	Col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{Col: db.Collection("institutions")}
}

func (r *CommentRepository) Create(ctx context.Context, instID, classID, resourceID bson.ObjectID, com *models.Comment) error {
	com.ID = bson.NewObjectID()
	com.CreatedAt = time.Now().UTC()

	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID, "classes.resources._id": resourceID},
		bson.M{"$push": bson.M{"classes.$[cls].resources.$[res].comments": com}},
		options.UpdateOne().SetArrayFilters([]interface{}{
			bson.M{"cls._id": classID},
			bson.M{"res._id": resourceID},
		}),
	)
	if err != nil {
		return err
	}
	// A matched document does not guarantee the array filters matched an
	// element (the resource id may live under a different class).
	if upd.MatchedCount == 0 || upd.ModifiedCount == 0 {
		return r.missAt(ctx, instID, classID, resourceID, bson.NilObjectID)
	}
	return nil
}

func (r *CommentRepository) List(ctx context.Context, instID, classID, resourceID bson.ObjectID) ([]models.Comment, error) {
	res, err := r.resource(ctx, instID, classID, resourceID)
	if err != nil {
		return nil, err
	}
	return res.Comments, nil
}

func (r *CommentRepository) Get(ctx context.Context, instID, classID, resourceID, commentID bson.ObjectID) (*models.Comment, error) {
	res, err := r.resource(ctx, instID, classID, resourceID)
	if err != nil {
		return nil, err
	}
	return locateComment(res, commentID)
}

func (r *CommentRepository) Update(ctx context.Context, instID, classID, resourceID, commentID bson.ObjectID, fields bson.M) (*models.Comment, error) {
	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID, "classes.resources._id": resourceID},
		bson.M{"$set": prefixFields("classes.$[cls].resources.$[res].comments.$[com].", fields)},
		options.UpdateOne().SetArrayFilters([]interface{}{
			bson.M{"cls._id": classID},
			bson.M{"res._id": resourceID},
			bson.M{"com._id": commentID},
		}),
	)
	if err != nil {
		return nil, err
	}
	if upd.MatchedCount == 0 {
		return nil, r.missAt(ctx, instID, classID, resourceID, commentID)
	}
	// The reread reports a missing comment: the document filter stops at the
	// resource level, so a dangling comment id still matches above.
	return r.Get(ctx, instID, classID, resourceID, commentID)
}

func (r *CommentRepository) Delete(ctx context.Context, instID, classID, resourceID, commentID bson.ObjectID) error {
	upd, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": instID, "classes._id": classID, "classes.resources._id": resourceID},
		bson.M{"$pull": bson.M{"classes.$[cls].resources.$[res].comments": bson.M{"_id": commentID}}},
		options.UpdateOne().SetArrayFilters([]interface{}{
			bson.M{"cls._id": classID},
			bson.M{"res._id": resourceID},
		}),
	)
	if err != nil {
		return err
	}
	if upd.MatchedCount == 0 || upd.ModifiedCount == 0 {
		return r.missAt(ctx, instID, classID, resourceID, commentID)
	}
	return nil
}

func (r *CommentRepository) resource(ctx context.Context, instID, classID, resourceID bson.ObjectID) (*models.Resource, error) {
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

func (r *CommentRepository) missAt(ctx context.Context, instID, classID, resourceID, commentID bson.ObjectID) error {
	res, err := r.resource(ctx, instID, classID, resourceID)
	if err != nil {
		return err
	}
	if commentID.IsZero() {
		return apperr.NotFound(apperr.KindResource, resourceID.Hex())
	}
	if _, err := locateComment(res, commentID); err != nil {
		return err
	}
	return apperr.NotFound(apperr.KindComment, commentID.Hex())
}

func CommentFields(req dto.UpdateCommentReq) (bson.M, error) {
	fields := bson.M{}
	if req.UserID != nil {
		oid, err := parseID(*req.UserID)
		if err != nil {
			return nil, err
		}
		fields["user_id"] = oid
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	return fields, nil
}
