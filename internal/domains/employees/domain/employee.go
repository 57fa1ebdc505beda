package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyCode     = errors.New("employee code is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
)

// Employee is a back-office operator identified by a short code, e.g. EMP001.
// Passwords are stored as bcrypt hashes only.
type Employee struct {
	ID           int64
	Code         string
	Name         string
	PasswordHash string
	Active       bool
}

// NewEmployee builds an active employee with a hashed password.
func NewEmployee(code, name, password string) (*Employee, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Employee{Code: code, Name: strings.TrimSpace(name), PasswordHash: hash, Active: true}, nil
}

// CheckPassword compares the stored hash against the supplied credentials.
func (e *Employee) CheckPassword(password string) bool {
	if e.PasswordHash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// HashPassword enforces minimal strength and bcrypt-hashes the password.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
