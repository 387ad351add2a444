// File: lifekitadmin/models/admin.go
package models

// AdminProfile is the role-bearing profile the core API returns at login and
// from /users/profile. Only profiles with Role "admin" may use the console.
type AdminProfile struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"full_name"`
	JobTitle          string `json:"job_title,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Role              string `json:"role"`
}

// IsAdmin reports whether the profile carries the administrator role. This is
// a UX-only pre-check; the core API enforces authorization on every call.
func (p AdminProfile) IsAdmin() bool {
	return p.Role == "admin"
}

// AdminUser is an entry in the admin-user management list.
type AdminUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// AdminInvite is the payload for creating a new administrative account.
type AdminInvite struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
