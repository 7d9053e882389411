package models

// User is the account profile returned by the qodefly API.
// The client never caches or mutates it; callers fetch it fresh via
// GET /auth/me whenever they need it.
type User struct {
	// ID is the server-side identifier of the account.
	ID int64 `json:"id"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// IsBeta marks accounts enrolled in the beta programme.
	IsBeta bool `json:"is_beta"`

	// CreatedAt is the registration timestamp. Older API versions omit it,
	// so it is optional. Unparseable values decode as unknown.
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

// PlanLabel returns the human-readable account type shown on the settings
// screen.
func (u User) PlanLabel() string {
	if u.IsBeta {
		return "Beta Tester · Free plan"
	}
	return "Free plan"
}

// MemberSince formats CreatedAt as "January 2, 2006". It returns an empty
// string when the timestamp is unknown.
func (u User) MemberSince() string {
	if u.CreatedAt == nil || u.CreatedAt.IsZero() {
		return ""
	}
	return u.CreatedAt.Format("January 2, 2006")
}
