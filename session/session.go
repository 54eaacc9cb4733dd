// Package session carries the admin's credential and profile snapshot as an
// explicit value instead of process-wide storage. Expiry and invalidation are
// the credential issuer's responsibility, not checked here.
package session

type AdminProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	HotelName string `json:"hotelName"`
}

type Session struct {
	token string
	Admin AdminProfile
}

func New(token string, admin AdminProfile) Session {
	return Session{token: token, Admin: admin}
}

// BearerToken returns the opaque credential for the Authorization header.
func (s Session) BearerToken() string {
	return s.token
}
