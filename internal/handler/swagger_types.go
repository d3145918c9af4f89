package handler

import "upiscan/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// PayloadRequest carries the decoded text of one QR code.
type PayloadRequest struct {
	Payload string `json:"payload" example:"upi://pay?pa=merchant%40icici&pn=Corner%20Store"`
}

// BatchRequest carries decoded QR texts for bulk extraction.
type BatchRequest struct {
	Payloads []string `json:"payloads" binding:"required" example:"upi://pay?pa=a%40bank,00020101021226300010A00000052401121234@ybl6304ABCD"`
}

// --- Response Types ---

// ClassifyResponse reports the kind of a payload.
type ClassifyResponse struct {
	Kind domain.PayloadKind `json:"kind" example:"emv"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *BatchMeta  `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
