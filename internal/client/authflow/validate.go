package authflow

import (
	"regexp"
	"strings"
)

// Validation messages shown inline on the auth screens.
const (
	MsgEmailRequired    = "Please enter your email"
	MsgEmailInvalid     = "Invalid email format"
	MsgPasswordRequired = "Please enter your password"
	MsgPasswordShort    = "Password must be at least 6 characters"
	MsgPasswordMismatch = "Passwords do not match"
	MsgRegisterFailed   = "Registration failed"
	MsgLoginFailed      = "Login failed"
	MsgRegistered       = "Done! Please sign in with the email and password you registered."
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginForm struct {
	Email    string
	Password string
}

// ValidateRegister returns the first failing check's message, or "".
func ValidateRegister(f RegisterForm) string {
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		return MsgEmailRequired
	case !emailRe.MatchString(email):
		return MsgEmailInvalid
	case len([]rune(f.Password)) < minPasswordLen:
		return MsgPasswordShort
	case f.Password != f.ConfirmPassword:
		return MsgPasswordMismatch
	}
	return ""
}

// ValidateLogin returns the first failing check's message, or "".
func ValidateLogin(f LoginForm) string {
	switch {
	case strings.TrimSpace(f.Email) == "":
		return MsgEmailRequired
	case f.Password == "":
		return MsgPasswordRequired
	}
	return ""
}
