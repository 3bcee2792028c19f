package dto

import "github.com/correduria/backoffice/internal/domain"

// ErrorResponse cuerpo de error HTTP: {"message": ...} y, para errores de
// validación, el detalle por campo en "errors".
type ErrorResponse struct {
	Message string             `json:"message"`
	Errors  domain.FieldErrors `json:"errors,omitempty"`
}

// MessageResponse cuerpo de éxito con solo un mensaje (altas y borrados).
type MessageResponse struct {
	Message string `json:"message"`
}
