package guard

import (
	"testing"
	"time"

	"github.com/goserg/foodlog/auth/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOk bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOk: true},
		{name: "empty header", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwdw=="},
		{name: "lowercase scheme", header: "bearer abc"},
		{name: "prefix only", header: "Bearer "},
		{name: "no space", header: "Bearerabc"},
		{name: "raw token", header: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorize(t *testing.T) {
	issuer := token.NewIssuer(token.Config{Secret: "guard-secret"})
	valid, err := issuer.Issue("user-1")
	require.NoError(t, err)
	expired, err := issuer.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).Issue("user-1")
	require.NoError(t, err)
	foreign, err := token.NewIssuer(token.Config{Secret: "other"}).Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantReason Reason
		wantErr    error
	}{
		{name: "authorized", header: "Bearer " + valid},
		{name: "no header", header: "", wantReason: NoCredential},
		{name: "wrong scheme", header: "Token " + valid, wantReason: NoCredential},
		{name: "malformed", header: "Bearer garbage", wantReason: InvalidCredential, wantErr: token.ErrMalformed},
		{name: "expired", header: "Bearer " + expired, wantReason: InvalidCredential, wantErr: token.ErrExpired},
		{name: "foreign secret", header: "Bearer " + foreign, wantReason: InvalidCredential, wantErr: token.ErrSignatureInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Authorize(issuer, tt.header)
			assert.Equal(t, tt.wantReason, res.Reason)
			if tt.wantReason == 0 {
				assert.True(t, res.Authorized())
				assert.Equal(t, "user-1", res.Claims.UserID)
				return
			}
			assert.False(t, res.Authorized())
			assert.Empty(t, res.Claims.UserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			} else {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "no credential provided", NoCredential.String())
	assert.Equal(t, "invalid credential", InvalidCredential.String())
}
