package models

import "time"

// User is the DB row for a staff account.
type User struct {
	UserID                 string     `db:"user_id"`
	Username               string     `db:"username"`
	Name                   string     `db:"name"`
	Email                  string     `db:"email"`              // nullable
	PasswordHash           string     `db:"password_hash"`      // nullable for OAuth-only users
	AuthProvider           string     `db:"auth_provider"`      // LOCAL or GOOGLE
	ProviderUserID         string     `db:"provider_user_id"`   // nullable
	RefreshTokenHash       string     `db:"refresh_token_hash"` // nullable
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
}
