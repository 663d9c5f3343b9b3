package auth

import (
	"errors"
	"strings"

	"github.com/hookedapp/hooked/internal/pkg/validator"
)

// ValidateRegister checks registration input formats
func ValidateRegister(req *RegisterRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email format")
	}
	if !validator.IsValidUsername(req.Username) {
		return errors.New("username must be 3-20 characters (letters, numbers, _ or -)")
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(req.Tags) > 10 {
		return errors.New("at most 10 interest tags allowed")
	}
	for i, tag := range req.Tags {
		req.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
		if !validator.IsValidTag(req.Tags[i]) {
			return errors.New("invalid interest tag: " + tag)
		}
	}
	return nil
}

// ValidateLogin checks login input formats
func ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email format")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
