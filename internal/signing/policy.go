// internal/signing/policy.go
package signing

import "qr-code-backend/internal/models"

// AccessPolicy decides whether a token-less (external) request may still be
// served. The default denies all external access.
//
// The predicate, when set, is evaluated against the current request's user at
// serve time; its result is deliberately not baked into issued tokens, so a
// permission change takes effect on the next request even for tokens issued
// earlier.
type AccessPolicy struct {
	// AllowAnonymous grants every token-less request, regardless of identity.
	AllowAnonymous bool
	// AllowRegistered grants token-less requests from any authenticated user.
	AllowRegistered bool
	// Predicate, when non-nil, takes precedence over AllowRegistered and is
	// called with the (possibly nil) current user. The predicate owns
	// nil-handling: it may grant anonymous requests.
	Predicate func(user *models.User) bool
}

// AllowsExternalRequest reports whether a request without a token may be
// served for the given user.
func (p *AccessPolicy) AllowsExternalRequest(user *models.User) bool {
	if p == nil {
		return false
	}
	if p.Predicate != nil {
		return p.Predicate(user)
	}
	if p.AllowRegistered && user != nil && user.Authenticated {
		return true
	}
	return p.AllowAnonymous
}
