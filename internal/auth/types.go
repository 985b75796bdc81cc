package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// Config describes how bearer tokens are verified. A disabled config yields no
// authenticator and every route stays open.
type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}

// Principal is the caller identity extracted from a verified token.
type Principal struct {
	Issuer   string
	Subject  string
	Username string
	Audience any
	Claims   map[string]any
}
