// Package token issues and verifies the bearer tokens handed out at login.
//
// Tokens are HS256 JWTs carrying the user id. They are not stored anywhere:
// a token stays valid until it expires, one hour after issuance.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TTL is the lifetime of every issued token.
const TTL = time.Hour

var (
	ErrVerification     = errors.New("token verification failed")
	ErrMalformed        = fmt.Errorf("%w: malformed", ErrVerification)
	ErrSignatureInvalid = fmt.Errorf("%w: signature invalid", ErrVerification)
	ErrExpired          = fmt.Errorf("%w: expired", ErrVerification)
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// Valid enforces expiry only. A token issued by a server whose clock runs
// ahead is still accepted.
func (c Claims) Valid() error {
	if c.ExpiresAt == 0 {
		return &jwt.ValidationError{
			Inner:  errors.New("token has no expiry"),
			Errors: jwt.ValidationErrorClaimsInvalid,
		}
	}
	if !c.VerifyExpiresAt(jwt.TimeFunc().Unix(), true) {
		return &jwt.ValidationError{
			Inner:  errors.New("token is expired"),
			Errors: jwt.ValidationErrorExpired,
		}
	}
	return nil
}

type Config struct {
	Secret string
}

type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{
		secret: []byte(cfg.Secret),
		now:    time.Now,
	}
}

// WithClock returns a copy of the issuer that stamps tokens using now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	c := *i
	c.now = now
	return &c
}

func (i *Issuer) Issue(userID string) (string, error) {
	issuedAt := i.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(TTL).Unix(),
		},
	})
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded claims. Every
// failure wraps ErrVerification and is one of ErrMalformed,
// ErrSignatureInvalid or ErrExpired.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !t.Valid || claims.UserID == "" {
		return Claims{}, ErrMalformed
	}
	return claims, nil
}

func classify(err error) error {
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch {
	case ve.Errors&jwt.ValidationErrorMalformed != 0:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	case ve.Errors&jwt.ValidationErrorExpired != 0:
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
