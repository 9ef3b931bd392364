package google

// DefaultOAuthScopes are the Google OAuth scopes dayplan requests.
//
// The scopes provide access to:
//   - Google Calendar: full access (read, create, respond, reschedule)
//   - OpenID Connect user info (for identifying the authorized account)
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar",
}
