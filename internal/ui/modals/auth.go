package modals

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

var (
	errEmailRequired    = errors.New("email is required")
	errPasswordRequired = errors.New("password is required")
	errUsernameRequired = errors.New("username is required")
)

func requireEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errEmailRequired
	}
	return nil
}

// =============================================================================
// SignInState - email and password form shown while signed out
// =============================================================================

type SignInState struct {
	email    string
	password string

	form        *huh.Form
	initialized bool
}

func (*SignInState) modalState() {}
func (*SignInState) authForm()   {}

func (s *SignInState) Title() string { return "Sign In" }

func (s *SignInState) Help() string {
	return "Tab: next  Enter: sign in  ctrl+n: create account  ctrl+r: forgot password"
}

func (s *SignInState) Render() string {
	return renderModal(s.Title(), s.form.View(), s.Help())
}

func (s *SignInState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetValues returns the entered credentials with the email trimmed.
func (s *SignInState) GetValues() (email, password string) {
	return strings.TrimSpace(s.email), s.password
}

// Validate reports the first missing field.
func (s *SignInState) Validate() error {
	if err := requireEmail(s.email); err != nil {
		return err
	}
	if s.password == "" {
		return errPasswordRequired
	}
	return nil
}

// NewSignInState creates the sign-in form. email prefills the first field,
// which the app uses after a successful sign-up.
func NewSignInState(email string) *SignInState {
	s := &SignInState{email: email}
	s.form = newModalForm(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.password),
	)
	s.initialized = true
	initHuhForm(s.form)
	return s
}

// =============================================================================
// SignUpState - account creation form
// =============================================================================

type SignUpState struct {
	username string
	email    string
	password string

	form        *huh.Form
	initialized bool
}

func (*SignUpState) modalState() {}
func (*SignUpState) authForm()   {}

func (s *SignUpState) Title() string { return "Create Account" }

func (s *SignUpState) Help() string {
	return "Tab: next  Enter: sign up  Esc: back to sign in"
}

func (s *SignUpState) Render() string {
	return renderModal(s.Title(), s.form.View(), s.Help())
}

func (s *SignUpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetValues returns the entered account details with username and email trimmed.
func (s *SignUpState) GetValues() (username, email, password string) {
	return strings.TrimSpace(s.username), strings.TrimSpace(s.email), s.password
}

func (s *SignUpState) Validate() error {
	if strings.TrimSpace(s.username) == "" {
		return errUsernameRequired
	}
	if err := requireEmail(s.email); err != nil {
		return err
	}
	if s.password == "" {
		return errPasswordRequired
	}
	return nil
}

func NewSignUpState() *SignUpState {
	s := &SignUpState{}
	s.form = newModalForm(
		huh.NewInput().
			Title("Username").
			Placeholder("ada").
			CharLimit(ModalInputCharLimit).
			Value(&s.username),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.password),
	)
	s.initialized = true
	initHuhForm(s.form)
	return s
}

// =============================================================================
// ResetPasswordState - password reset request form
// =============================================================================

type ResetPasswordState struct {
	email string

	form        *huh.Form
	initialized bool
}

func (*ResetPasswordState) modalState() {}
func (*ResetPasswordState) authForm()   {}

func (s *ResetPasswordState) Title() string { return "Reset Password" }

func (s *ResetPasswordState) Help() string {
	return "Enter: send reset email  Esc: back to sign in"
}

func (s *ResetPasswordState) Render() string {
	return renderModal(s.Title(), s.form.View(), s.Help())
}

func (s *ResetPasswordState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

func (s *ResetPasswordState) GetEmail() string {
	return strings.TrimSpace(s.email)
}

func (s *ResetPasswordState) Validate() error {
	return requireEmail(s.email)
}

func NewResetPasswordState() *ResetPasswordState {
	s := &ResetPasswordState{}
	s.form = newModalForm(
		huh.NewInput().
			Title("Email").
			Description("We will send a reset link to this address").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
	)
	s.initialized = true
	initHuhForm(s.form)
	return s
}
