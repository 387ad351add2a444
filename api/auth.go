package api

import (
	"context"

	"lifekitadmin/models"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the authentication record returned alongside the profile. Its
// metadata may carry profile fields the profile row itself lacks.
type AuthUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

type authSession struct {
	AccessToken string `json:"access_token"`
}

// LoginResult is the full login reply.
type LoginResult struct {
	User    AuthUser            `json:"user"`
	Session authSession         `json:"session"`
	Profile models.AdminProfile `json:"profile"`
}

// AccessToken returns the bearer credential issued for this login.
func (r LoginResult) AccessToken() string {
	return r.Session.AccessToken
}

// Login authenticates against the core API. The caller is responsible for the
// administrator-role gate; the backend authenticates any valid user.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type profileEnvelope struct {
	Profile models.AdminProfile `json:"profile"`
}

// Profile fetches the authenticated user's fresh profile.
func (c *Client) Profile(ctx context.Context) (*models.AdminProfile, error) {
	var env profileEnvelope
	if err := c.get(ctx, "/users/profile", &env); err != nil {
		return nil, err
	}
	return &env.Profile, nil
}

// ProfileUpdate is the profile-save payload.
type ProfileUpdate struct {
	FullName          string `json:"full_name"`
	JobTitle          string `json:"job_title"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// UpdateProfile saves the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	return c.put(ctx, "/users/profile", update, nil)
}
