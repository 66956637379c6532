package dto

type CreateResourceReq struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type UpdateResourceReq struct {
	Title *string `json:"title"`
	Type  *string `json:"type"`
}

type CreateCommentReq struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

type UpdateCommentReq struct {
	UserID  *string `json:"user_id"`
	Content *string `json:"content"`
}

type FileUploadResp struct {
	FileIDs []string `json:"file_ids"`
}

type FileInfoResp struct {
	FileID      string `json:"file_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
}
