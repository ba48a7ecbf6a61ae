package model

import "github.com/vaultpass/passgen/internal/generator"

// GenerateRequest represents a password generation request.
// Missing toggles are treated as false, a missing length as the default length.
type GenerateRequest struct {
	Length  int  `json:"length"`
	Numbers bool `json:"numbers"`
	Symbols bool `json:"symbols"`
	Count   int  `json:"count"`
}

// GenerateResponse represents a password generation response.
// Score and Entropy are an estimate for the first password only.
type GenerateResponse struct {
	Passwords []string           `json:"passwords"`
	Length    int                `json:"length"`
	Strength  generator.Strength `json:"strength"`
	Score     int                `json:"score"`
	Entropy   float64            `json:"entropy"`
}

// StrengthRequest represents a strength classification request.
type StrengthRequest struct {
	Length  int  `json:"length"`
	Numbers bool `json:"numbers"`
	Symbols bool `json:"symbols"`
}

// StrengthResponse represents a strength classification response.
type StrengthResponse struct {
	Strength generator.Strength `json:"strength"`
}
