package dto

type SaveImageRequest struct {
	CPF       FlexString `json:"cpf" binding:"required"`
	Image     string     `json:"image" binding:"required"`
	Timestamp string     `json:"timestamp"`
}

type UpdateImageRequest struct {
	CPF          FlexString `json:"cpf" binding:"required"`
	Image        string     `json:"image" binding:"required"`
	TimestampISO string     `json:"timestamp_iso" binding:"required"`
}

type ImageDTO struct {
	Image        string `json:"image"`
	Timestamp    string `json:"timestamp"`
	TimestampISO string `json:"timestamp_iso"`
}
