package models

// Credentials is the request body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the payload returned by a successful login or registration.
// The client persists AccessToken and hands the whole value to the caller.
type AuthResponse struct {
	// AccessToken is the opaque bearer credential for subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is the credential scheme, "bearer" in practice.
	TokenType string `json:"token_type"`

	// User is the profile of the account the token belongs to.
	User User `json:"user"`
}

// ErrorPayload is the error body convention of the qodefly API: every
// non-2xx response is expected to carry a human-readable Detail.
type ErrorPayload struct {
	Detail string `json:"detail"`

	// Redirect is set by the session gateway when the caller must navigate to
	// the login surface. The upstream API never sets it.
	Redirect string `json:"redirect,omitempty"`
}
