package models

// Registration is the sign-up form as entered by the user. Only Email and
// Password are sent to the API; Confirm is checked locally.
type Registration struct {
	Email    string
	Password string
	Confirm  string
}

// Credentials returns the request body for POST /auth/register.
func (r Registration) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}
