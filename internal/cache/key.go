// internal/cache/key.go
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// DeriveKey builds a stable cache key from the canonical serving URL (token
// and cache-control flags already stripped) plus any out-of-band flags that
// the URL does not carry. The digest keeps keys reasonably sized and
// compatible with every cache backend's character set.
//
// The key must be identical across processes so a multi-instance deployment
// shares hits, and the token must never be part of it: the same image is a
// hit no matter whose token produced the request. MD5 is fine here, the key
// only needs to avoid accidental collisions, not adversarial ones.
func DeriveKey(canonicalURL string, extraFlags map[string]string) string {
	var b strings.Builder
	b.WriteString("qr.")
	b.WriteString(canonicalURL)

	keys := make([]string, 0, len(extraFlags))
	for key := range extraFlags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "&%s=%s", key, extraFlags[key])
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
