package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a JWT with the pieces the note service needs after parsing.
//
// SignedString holds the compact serialized form (header.payload.signature)
// sent in the Authorization header. UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
