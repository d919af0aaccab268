// Package guard decides whether a request carries a usable bearer token.
// It knows nothing about HTTP frameworks; internal/web adapts it to fiber.
package guard

import (
	"strings"

	"github.com/goserg/foodlog/auth/token"
)

type Verifier interface {
	Verify(tokenString string) (token.Claims, error)
}

type Reason int

const (
	NoCredential Reason = iota + 1
	InvalidCredential
)

func (r Reason) String() string {
	switch r {
	case NoCredential:
		return "no credential provided"
	case InvalidCredential:
		return "invalid credential"
	default:
		return "authorized"
	}
}

// Result is either Authorized with Claims set, or rejected with a Reason.
type Result struct {
	Claims token.Claims
	Reason Reason
	Err    error
}

func (r Result) Authorized() bool {
	return r.Reason == 0
}

func authorized(c token.Claims) Result {
	return Result{Claims: c}
}

func rejected(reason Reason, err error) Result {
	return Result{Reason: reason, Err: err}
}

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an Authorization header value.
// Anything without the "Bearer " prefix counts as no token.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	t := strings.TrimSpace(header[len(bearerPrefix):])
	return t, t != ""
}

func Authorize(v Verifier, authorizationHeader string) Result {
	t, ok := BearerToken(authorizationHeader)
	if !ok {
		return rejected(NoCredential, nil)
	}
	claims, err := v.Verify(t)
	if err != nil {
		return rejected(InvalidCredential, err)
	}
	return authorized(claims)
}
