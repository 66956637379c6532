package dto

// LocationReq carries the optional institution location. Coordinates must be
// a 2-element [longitude, latitude] pair.
type LocationReq struct {
	Department  string    `json:"department"`
	Coordinates []float64 `json:"coordinates"`
}

type CreateInstitutionReq struct {
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Location *LocationReq `json:"location"`
}

// UpdateInstitutionReq is a partial update: nil fields are left untouched.
type UpdateInstitutionReq struct {
	Name     *string      `json:"name"`
	Address  *string      `json:"address"`
	Location *LocationReq `json:"location"`
}
