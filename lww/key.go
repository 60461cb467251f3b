// SPDX-License-Identifier: MIT

package lww

import (
	"crypto/sha1"
	"encoding/hex"
	"io"

	"github.com/sanity-io/litter"
)

// Key is the content address of a value: a hex SHA-1 digest.
type Key string

// Keyer is implemented by values that compute their own Key.
// Implementations must return equal keys for values they consider equal.
type Keyer interface {
	ElementKey() Key
}

// canonical is the litter configuration behind Canonical. Pointer
// replacement is off so that two pointers to equal data dump identically.
var canonical = litter.Options{
	Compact:                   true,
	HidePrivateFields:         false,
	DisablePointerReplacement: true,
}

// Canonical returns the canonical serialization of v used for hashing and
// for breaking timestamp ties during Merge.
func Canonical(v any) string {
	return canonical.Sdump(v)
}

// ElementKey returns the content address of v.
func ElementKey(v any) Key {
	if k, ok := v.(Keyer); ok {
		return k.ElementKey()
	}

	return HashKey(Canonical(v))
}

// HashKey hashes parts into a Key. Parts are delimited, so ("ab","c") and
// ("a","bc") produce different keys.
func HashKey(parts ...string) Key {
	h := sha1.New()
	for _, p := range parts {
		_, _ = io.WriteString(h, p)
		_, _ = h.Write([]byte{0})
	}

	return Key(hex.EncodeToString(h.Sum(nil)))
}
