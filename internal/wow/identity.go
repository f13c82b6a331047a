// Package wow holds the character domain: identity normalization, the typed
// profile model, and the lookup service in front of the Raider.io provider.
package wow

import (
	"errors"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrMissingIdentity is returned when region, realm, or name is empty after
// normalization. It is the only error the lookup path ever surfaces.
var ErrMissingIdentity = errors.New("wow: region, realm, and name are required")

// Identity is the three-part key identifying a character. Region and realm
// are lowercased; Name keeps its display casing but is NFC-normalized so
// accented spellings from different sources compare equal.
type Identity struct {
	Region string
	Realm  string
	Name   string
}

// Normalize canonicalizes raw route input into an Identity.
//
// Route values arrive sometimes percent-decoded and sometimes not, depending
// on the frontend router, so the name goes through a decode that falls back
// to the original string on malformed escapes.
func Normalize(region, realm, rawName string) (Identity, error) {
	id := Identity{
		Region: strings.ToLower(strings.TrimSpace(region)),
		Realm:  strings.ToLower(strings.TrimSpace(realm)),
		Name:   strings.TrimSpace(norm.NFC.String(safeDecode(rawName))),
	}
	if id.Region == "" || id.Realm == "" || id.Name == "" {
		return Identity{}, ErrMissingIdentity
	}
	return id, nil
}

// Lookup returns the case-folded comparison form of the name.
func (id Identity) Lookup() string {
	return strings.ToLower(id.Name)
}

// Key returns the cache key for the normalized identity.
func (id Identity) Key() string {
	return "character:" + id.Region + ":" + id.Realm + ":" + id.Lookup()
}

// safeDecode percent-decodes val, returning the input unchanged when the
// escape sequences are malformed. Never fails.
func safeDecode(val string) string {
	if val == "" {
		return ""
	}
	decoded, err := url.PathUnescape(val)
	if err != nil {
		return val
	}
	return decoded
}
