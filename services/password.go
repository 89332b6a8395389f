package services

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordNoLetter = errors.New("password must contain at least one letter")
	ErrPasswordNoNumber = errors.New("password must contain at least one number")
	ErrPasswordCommon   = errors.New("password is too common")
)

// PasswordPolicy validates and hashes user passwords.
type PasswordPolicy struct {
	minLength int
	cost      int
	common    map[string]bool
}

func NewPasswordPolicy(cost int) *PasswordPolicy {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordPolicy{
		minLength: 8,
		cost:      cost,
		common: map[string]bool{
			"password":  true,
			"password1": true,
			"12345678":  true,
			"qwerty123": true,
			"welcome1":  true,
		},
	}
}

func (p *PasswordPolicy) Validate(password string) error {
	if len(password) < p.minLength {
		return ErrPasswordTooShort
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsNumber(r):
			hasNumber = true
		}
	}
	if !hasLetter {
		return ErrPasswordNoLetter
	}
	if !hasNumber {
		return ErrPasswordNoNumber
	}
	if p.common[strings.ToLower(password)] {
		return ErrPasswordCommon
	}
	return nil
}

func (p *PasswordPolicy) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether password corresponds to hash.
func (p *PasswordPolicy) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
