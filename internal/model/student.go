package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Student struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Program      string
	YearOfStudy  int
	PasswordHash string
}

// Registration carries the raw registration form, password still in plain text.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Program     string
	YearOfStudy int
	Password    string
}

// Claims - identity claims embedded in the session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
