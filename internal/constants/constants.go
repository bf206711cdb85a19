package constants

const (
	// ContextKeyUser is the gin context key the auth middleware stores the
	// resolved user under.
	ContextKeyUser = "currentUser"

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 4
)
