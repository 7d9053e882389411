package models

// WaitlistRequest is the body of POST /waitlist.
type WaitlistRequest struct {
	Email string `json:"email"`
}
