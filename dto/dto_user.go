package dto

import "time"

type NameReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateUserReq struct {
	Name          NameReq    `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	Role          string     `json:"role"`
	BirthDate     *time.Time `json:"birth_date"`
	InstitutionID *string    `json:"educational_institution_id"`
}

// UpdateUserReq is a partial update: nil fields are left untouched. A new
// password is re-hashed before storage.
type UpdateUserReq struct {
	Name          *NameReq   `json:"name"`
	Email         *string    `json:"email"`
	Password      *string    `json:"password"`
	Role          *string    `json:"role"`
	BirthDate     *time.Time `json:"birth_date"`
	InstitutionID *string    `json:"educational_institution_id"`
}
