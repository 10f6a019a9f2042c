package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed JWT together with its registered claims.
//
// The subject claim carries the user id. Both the exam client and the
// draft service read it from there: the client uses it as the draft
// passphrase and key component, the server scopes drafts by it.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact form sent in the Authorization header.
	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns UserID, or the subject claim when UserID is not set.
func (t *Token) GetUserID() (string, error) {
	if t.UserID != "" {
		return t.UserID, nil
	}

	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
