package authflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name string
		form RegisterForm
		want string
	}{
		{"ok", RegisterForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, ""},
		{"trimmed email ok", RegisterForm{Email: "  a@b.co ", Password: "secret1", ConfirmPassword: "secret1"}, ""},
		{"empty email", RegisterForm{Email: " ", Password: "secret1", ConfirmPassword: "secret1"}, MsgEmailRequired},
		{"no at", RegisterForm{Email: "ab.co", Password: "secret1", ConfirmPassword: "secret1"}, MsgEmailInvalid},
		{"no dot", RegisterForm{Email: "a@bco", Password: "secret1", ConfirmPassword: "secret1"}, MsgEmailInvalid},
		{"inner space", RegisterForm{Email: "a b@c.de", Password: "secret1", ConfirmPassword: "secret1"}, MsgEmailInvalid},
		{"short password", RegisterForm{Email: "a@b.co", Password: "12345", ConfirmPassword: "12345"}, MsgPasswordShort},
		{"exactly six", RegisterForm{Email: "a@b.co", Password: "123456", ConfirmPassword: "123456"}, ""},
		{"mismatch", RegisterForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2"}, MsgPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRegister(tt.form))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Equal(t, "", ValidateLogin(LoginForm{Email: "x", Password: "y"}))
	assert.Equal(t, MsgEmailRequired, ValidateLogin(LoginForm{Email: "  ", Password: "y"}))
	assert.Equal(t, MsgPasswordRequired, ValidateLogin(LoginForm{Email: "x"}))
}
