package constants

// Session
const (
	SessionCookieName = "mytodo_session"
	ContextKeyUserID  = "user_id"

	// SessionMaxAge bounds session lifetime; the source system never
	// expired sessions, which is not acceptable in production.
	SessionMaxAge = 86400 * 7
)
