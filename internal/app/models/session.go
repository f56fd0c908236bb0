package models

import "time"

// Session is the caller identity decoded from the bearer token.
type Session struct {
	IdentityID string
	Role       string
	ExpiresAt  time.Time
}

