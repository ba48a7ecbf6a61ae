package model

import "github.com/vaultpass/passgen/internal/generator"

// WidgetState represents the current widget state.
type WidgetState struct {
	Password string             `json:"password"`
	Length   int                `json:"length"`
	Numbers  bool               `json:"numbers"`
	Symbols  bool               `json:"symbols"`
	Strength generator.Strength `json:"strength"`
}

// WidgetPatchRequest represents a partial widget configuration update.
// Pointer fields allow distinguishing between missing and explicit values.
type WidgetPatchRequest struct {
	Length  *int  `json:"length"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}

// CopyResponse represents the outcome of a clipboard copy.
type CopyResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
