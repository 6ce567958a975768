package models

// RefreshTokenDB is the server-side record of a subject's current refresh token.
// At most one exists per subject; a new login overwrites the previous one.
type RefreshTokenDB struct {
	Subject string `json:"subject"` // User email
	Token   string `json:"token"`   // Signed refresh token string
}
