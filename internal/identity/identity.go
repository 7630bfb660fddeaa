// Package identity mints stable entity identities.
//
// Two primitives cover every entity kind: Slug for human-legible
// name-derived identities and HashLocalName for content-addressed ones.
// Both are pure functions of their input, so independent runs on any
// platform mint the same identity for the same content.
package identity

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/gosimple/slug"
)

// Slug normalizes text to a lowercase hyphen-joined token form.
func Slug(text string) string {
	return slug.Make(text)
}

// HashLocalName returns a content-addressed local name for an entity:
// the kind prefix joined to the hex digest of the exact byte content.
// The prefix keeps identities of different entity kinds from colliding
// even when they hash the same text.
func HashLocalName(prefix, value string) string {
	sum := md5.Sum([]byte(value))
	return prefix + "-" + hex.EncodeToString(sum[:])
}
