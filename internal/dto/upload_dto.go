package dto

type PresignUploadRequest struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"gt=0"`
	Purpose     string `json:"purpose" validate:"required"`
}

type UploadCompleteResponse struct {
	Key     string `json:"key"`
	FileUrl string `json:"fileUrl"`
	Size    int    `json:"size"`
}
