package domain

import "time"

// AuthEventType classifies entries in the authentication audit trail.
type AuthEventType string

const (
	EventRegistered   AuthEventType = "registered"
	EventLoggedIn     AuthEventType = "logged_in"
	EventLoggedOut    AuthEventType = "logged_out"
	EventLoginDenied  AuthEventType = "login_denied"
	EventAccessDenied AuthEventType = "access_denied"
)

// AuthEvent records a single authentication-flow occurrence.
type AuthEvent struct {
	Type     AuthEventType
	UserID   string // empty when the actor could not be identified
	Username string
	RemoteIP string
	At       time.Time
}
