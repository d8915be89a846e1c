package signing

import (
	"strings"
	"testing"

	"qr-code-backend/internal/models"
	"qr-code-backend/internal/options"
	apperrors "qr-code-backend/pkg/errors"
)

func TestIssueAndVerifyToken(t *testing.T) {
	s := NewSigner(Config{Key: "test-secret"})
	opts := options.Default()
	token := s.IssueToken(opts)
	if token == "" || !strings.Contains(token, ":") {
		t.Fatalf("malformed token %q", token)
	}
	if err := s.VerifyToken(opts, token); err != nil {
		t.Errorf("VerifyToken: %v", err)
	}
}

func TestIssueTokenDeterministic(t *testing.T) {
	s := NewSigner(Config{Key: "test-secret"})
	opts := options.Default()
	if s.IssueToken(opts) != s.IssueToken(opts) {
		t.Errorf("tokens for the same options must match within a process")
	}
}

func TestVerifyTokenRejectsDifferentOptions(t *testing.T) {
	s := NewSigner(Config{Key: "test-secret"})
	token := s.IssueToken(options.Default())
	other := options.Default()
	other.Size = 8
	err := s.VerifyToken(other, token)
	if err == nil {
		t.Fatal("token for different parameters must be rejected")
	}
	if !apperrors.IsErrorType(err, apperrors.ErrAccessDenied) {
		t.Errorf("error type = %v, want %v", apperrors.GetErrorType(err), apperrors.ErrAccessDenied)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	s := NewSigner(Config{Key: "test-secret"})
	opts := options.Default()
	token := s.IssueToken(opts)

	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}
	if err := s.VerifyToken(opts, tampered); !apperrors.IsErrorType(err, apperrors.ErrInvalidToken) {
		t.Errorf("tampered signature: error = %v, want invalid token", err)
	}
	if err := s.VerifyToken(opts, "no-signature-part"); !apperrors.IsErrorType(err, apperrors.ErrInvalidToken) {
		t.Errorf("missing separator: error = %v, want invalid token", err)
	}
}

func TestVerifyTokenRejectsForeignSigner(t *testing.T) {
	a := NewSigner(Config{Key: "key-a"})
	b := NewSigner(Config{Key: "key-a", Salt: "other-salt"})
	opts := options.Default()
	if err := b.VerifyToken(opts, a.IssueToken(opts)); err == nil {
		t.Errorf("a token signed under a different salt must be rejected")
	}
}

func TestCheckAccess(t *testing.T) {
	opts := options.Default()
	anonymous := (*models.User)(nil)
	registered := &models.User{ID: "u1", Authenticated: true}

	tests := []struct {
		name    string
		policy  *AccessPolicy
		user    *models.User
		wantErr bool
	}{
		{"deny all", &AccessPolicy{}, anonymous, true},
		{"deny registered only policy, anonymous", &AccessPolicy{AllowRegistered: true}, anonymous, true},
		{"allow registered", &AccessPolicy{AllowRegistered: true}, registered, false},
		{"allow anonymous", &AccessPolicy{AllowAnonymous: true}, anonymous, false},
		{"predicate grants", &AccessPolicy{Predicate: func(u *models.User) bool { return u != nil && u.Email == "ok@example.com" }}, &models.User{Email: "ok@example.com"}, false},
		{"predicate grants anonymous", &AccessPolicy{Predicate: func(u *models.User) bool { return true }}, anonymous, false},
		{"predicate denies", &AccessPolicy{Predicate: func(u *models.User) bool { return false }, AllowAnonymous: true}, registered, true},
		{"predicate denies anonymous", &AccessPolicy{Predicate: func(u *models.User) bool { return u != nil }, AllowAnonymous: true}, anonymous, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSigner(Config{Key: "test-secret", Policy: tt.policy})
			err := s.CheckAccess(opts, "", tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckAccess without token: err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

// A token carried by the request must verify even when the policy would have
// allowed the request without one.
func TestCheckAccessValidatesPresentToken(t *testing.T) {
	s := NewSigner(Config{Key: "test-secret", Policy: &AccessPolicy{AllowAnonymous: true}})
	opts := options.Default()
	if err := s.CheckAccess(opts, "bogus:token", nil); err == nil {
		t.Errorf("an invalid token must be rejected even under an open policy")
	}
	if err := s.CheckAccess(opts, s.IssueToken(opts), nil); err != nil {
		t.Errorf("valid token rejected: %v", err)
	}
}

func TestProcessSaltStableWithinProcess(t *testing.T) {
	salt := NewProcessSalt(0)
	first := salt.Value()
	if len(first) != DefaultTokenLength {
		t.Errorf("salt length = %d, want %d", len(first), DefaultTokenLength)
	}
	if salt.Value() != first {
		t.Errorf("process salt must be generated once")
	}
	if NewProcessSalt(0).Value() == first {
		t.Errorf("distinct salts should not collide")
	}
}
