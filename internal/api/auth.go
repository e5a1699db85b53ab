package api

import (
	"context"
	"strings"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	const op = perrors.Op("api.SignIn")

	var resp struct {
		User        User   `json:"user"`
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, op, pathSignIn, body, &resp, "Login failed", false); err != nil {
		return Session{}, err
	}
	return Session{User: resp.User, Token: resp.AccessToken}, nil
}

// SignUp registers an account. The user still has to sign in afterwards.
func (c *Client) SignUp(ctx context.Context, username, email, password string) error {
	const op = perrors.Op("api.SignUp")

	body := map[string]string{"username": username, "email": email, "password": password}
	return c.post(ctx, op, pathSignUp, body, nil, "Signup failed", false)
}

// ResetPassword asks the service to email a password reset link.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	const op = perrors.Op("api.ResetPassword")

	body := map[string]string{"email": email}
	return c.post(ctx, op, pathResetPassword, body, nil, "Reset failed", false)
}

// PrepareCode trims surrounding whitespace from editor text and rejects an
// empty result, so no request is made for blank input.
func PrepareCode(op perrors.Op, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", perrors.EmptyCode(op)
	}
	return code, nil
}
