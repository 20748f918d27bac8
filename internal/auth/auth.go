// Package auth provides the local mock user session. There is no real
// authentication backend; any email logs in as the demo account.
package auth

import (
	"context"
	"strings"
)

// DefaultEmail is used when the login form is submitted empty.
const DefaultEmail = "student@studyflow.pro"

// User is the signed-in account persisted across runs.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Repo persists the current user document.
type Repo interface {
	SaveUser(ctx context.Context, u User) error
	LoadUser(ctx context.Context) (*User, error)
	DeleteUser(ctx context.Context) error
}

// Login resolves the mock user for the given email and saves it. An
// empty email falls back to DefaultEmail.
func Login(ctx context.Context, repo Repo, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		email = DefaultEmail
	}
	u := User{
		ID:    "u1",
		Email: email,
		Name:  "Alex Johnson",
		Role:  "student",
	}
	if err := repo.SaveUser(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Current returns the persisted user, or nil when nobody is signed in.
func Current(ctx context.Context, repo Repo) (*User, error) {
	return repo.LoadUser(ctx)
}

// Logout clears the persisted session.
func Logout(ctx context.Context, repo Repo) error {
	return repo.DeleteUser(ctx)
}
