package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	TextLength   int    `json:"text_length"`
}

type EvaluateRequest struct {
	ResumeText       string `json:"resume_text"`
	ResumeDocumentID string `json:"resume_document_id"`
	JobDescription   string `json:"job_description" validate:"required"`
}

type SentimentRequest struct {
	FeedbackText string `json:"feedback_text" validate:"required"`
}
