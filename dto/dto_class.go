package dto

type CreateClassReq struct {
	Name       string   `json:"name"`
	TeacherID  string   `json:"teacher_id"`
	StudentIDs []string `json:"student_ids"`
}

// UpdateClassReq is a partial update: nil fields are left untouched. A
// non-nil empty student_ids slice clears the list.
type UpdateClassReq struct {
	Name       *string   `json:"name"`
	TeacherID  *string   `json:"teacher_id"`
	StudentIDs *[]string `json:"student_ids"`
}
