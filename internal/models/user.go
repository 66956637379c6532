package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

type Name struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
}

// User is a top-level document, independent of the institution tree except
// via the optional institution reference. The password hash never serializes
// to JSON.
type User struct {
	ID            bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name          Name           `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	PasswordHash  string         `bson:"password,omitempty" json:"-"`
	Role          Role           `bson:"role" json:"role"`
	BirthDate     *time.Time     `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	InstitutionID *bson.ObjectID `bson:"educational_institution_id,omitempty" json:"educational_institution_id,omitempty"`
	CreatedAt     time.Time      `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time      `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
