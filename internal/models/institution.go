package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Institution is the unit of storage: classes, resources and comments are
// embedded, so every mutation below this level is an update to the
// institution document.
type Institution struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string        `bson:"name" json:"name"`
	Address  string        `bson:"address" json:"address"`
	Location *Location     `bson:"location,omitempty" json:"location,omitempty"`
	Classes  []Class       `bson:"classes" json:"classes,omitempty"`
}

type Location struct {
	Department  string    `bson:"department,omitempty" json:"department,omitempty"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Class struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string          `bson:"name" json:"name"`
	TeacherID  bson.ObjectID   `bson:"teacher_id" json:"teacher_id"`
	StudentIDs []bson.ObjectID `bson:"student_ids" json:"student_ids"`
	Resources  []Resource      `bson:"resources" json:"resources,omitempty"`
}

type ResourceType string

const (
	ResourceDocument ResourceType = "document"
	ResourceVideo    ResourceType = "video"
	ResourceImage    ResourceType = "image"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceDocument, ResourceVideo, ResourceImage:
		return true
	}
	return false
}

type Resource struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string          `bson:"title" json:"title"`
	Type      ResourceType    `bson:"type" json:"type"`
	FileIDs   []bson.ObjectID `bson:"file_ids" json:"file_ids"`
	CreatedAt time.Time       `bson:"created_at,omitempty" json:"created_at,omitempty"`
	Comments  []Comment       `bson:"comments" json:"comments,omitempty"`
}

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    bson.ObjectID `bson:"user_id" json:"user_id"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// ClassByID scans the embedded classes for a matching id. The first match in
// sequence order wins; duplicate ids are not expected but not rejected.
func (i *Institution) ClassByID(id bson.ObjectID) *Class {
	for idx := range i.Classes {
		if i.Classes[idx].ID == id {
			return &i.Classes[idx]
		}
	}
	return nil
}

func (c *Class) ResourceByID(id bson.ObjectID) *Resource {
	for idx := range c.Resources {
		if c.Resources[idx].ID == id {
			return &c.Resources[idx]
		}
	}
	return nil
}

func (r *Resource) CommentByID(id bson.ObjectID) *Comment {
	for idx := range r.Comments {
		if r.Comments[idx].ID == id {
			return &r.Comments[idx]
		}
	}
	return nil
}

// HasFile reports whether the given GridFS file id is attached to the resource.
func (r *Resource) HasFile(id bson.ObjectID) bool {
	for _, fid := range r.FileIDs {
		if fid == id {
			return true
		}
	}
	return false
}
