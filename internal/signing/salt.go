// internal/signing/salt.go
package signing

import (
	"crypto/rand"
	"math/big"
	"sync"
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultTokenLength is the length of the process salt when none is configured.
const DefaultTokenLength = 20

// ProcessSalt holds the process-wide random salt mixed into every issued
// token. It is generated once per process start; a restart therefore
// invalidates all previously issued tokens, which bounds token lifetime
// without any server-side revocation state.
type ProcessSalt struct {
	length int
	once   sync.Once
	value  string
}

// NewProcessSalt returns an uninitialized salt of the given length. The
// random value is generated on first use.
func NewProcessSalt(length int) *ProcessSalt {
	if length <= 0 {
		length = DefaultTokenLength
	}
	return &ProcessSalt{length: length}
}

// Value returns the salt, generating it on the first call. Initialization is
// race-safe: concurrent first uses observe the same value.
func (s *ProcessSalt) Value() string {
	s.once.Do(func() {
		s.value = randomString(s.length)
	})
	return s.value
}

func randomString(length int) string {
	max := big.NewInt(int64(len(saltAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform entropy source is
			// broken; there is no reasonable way to continue issuing tokens.
			panic(err)
		}
		buf[i] = saltAlphabet[n.Int64()]
	}
	return string(buf)
}
