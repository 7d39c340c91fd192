package domain

// User models the signed-in account as returned by the upstream auth API.
// The password never transits this service; credential checks are upstream.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Provider  string `json:"provider,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// DisplayName returns the name shown in the navigation bar.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
