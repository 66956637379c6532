package repository

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sec-platform/internal/apperr"
)

// FileInfo is the blob metadata kept outside the entity tree.
type FileInfo struct {
	ID          bson.ObjectID
	Filename    string
	ContentType string
	Length      int64
}

// FileRepository is the blob store adapter over a GridFS bucket.
type FileRepository struct {
	Bucket *mongo.GridFSBucket
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{Bucket: db.GridFSBucket(options.GridFSBucket().SetName("sec-files"))}
}

// Upload streams the blob into the bucket and returns its generated id.
func (r *FileRepository) Upload(ctx context.Context, filename, contentType string, src io.Reader) (bson.ObjectID, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	return r.Bucket.UploadFromStream(ctx, filename, src, opts)
}

// Stat reads the bucket's file record without opening the content stream.
func (r *FileRepository) Stat(ctx context.Context, id bson.ObjectID) (*FileInfo, error) {
	cur, err := r.Bucket.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, apperr.NotFound(apperr.KindFile, id.Hex())
	}

	var f mongo.GridFSFile
	if err := cur.Decode(&f); err != nil {
		return nil, err
	}
	return &FileInfo{
		ID:          id,
		Filename:    f.Name,
		ContentType: contentTypeOf(f.Metadata),
		Length:      f.Length,
	}, nil
}

// Download opens the content stream; callers must close it.
func (r *FileRepository) Download(ctx context.Context, id bson.ObjectID) (*mongo.GridFSDownloadStream, *FileInfo, error) {
	stream, err := r.Bucket.OpenDownloadStream(ctx, id)
	if errors.Is(err, mongo.ErrFileNotFound) {
		return nil, nil, apperr.NotFound(apperr.KindFile, id.Hex())
	}
	if err != nil {
		return nil, nil, err
	}

	f := stream.GetFile()
	info := &FileInfo{
		ID:          id,
		Filename:    f.Name,
		ContentType: contentTypeOf(f.Metadata),
		Length:      f.Length,
	}
	return stream, info, nil
}

func contentTypeOf(metadata bson.Raw) string {
	if len(metadata) == 0 {
		return ""
	}
	v, err := metadata.LookupErr("contentType")
	if err != nil {
		return ""
	}
	ct, _ := v.StringValueOK()
	return ct
}
