package model

// GenerateRequest represents a password generation request. Zero values
// select the defaults: 16 characters, one password, no hash.
type GenerateRequest struct {
	Length int  `json:"length" validate:"omitempty,max=1024"`
	Count  int  `json:"count" validate:"omitempty,min=1,max=50"`
	Hash   bool `json:"hash"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
}

// GeneratedPassword is a single generated password with its metadata.
type GeneratedPassword struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
	Hash     string           `json:"hash,omitempty"`
}

// StrengthResponse mirrors the strength estimate of a password.
type StrengthResponse struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}
