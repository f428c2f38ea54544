package models

import (
	"fmt"
	"strings"

	"github.com/spring01/music/internal/shared"
)

// KeySeparator joins artist, album, and title in a composite key.
const KeySeparator = " ||| "

// EncodeKey joins artist, album, and title into a composite key.
//
// A field containing [KeySeparator] could not be decoded back, so it is rejected with
// [shared.ErrSeparatorInField].
func EncodeKey(artist, album, title string) (string, error) {
	for _, field := range []string{artist, album, title} {
		if strings.Contains(field, KeySeparator) {
			return "", fmt.Errorf("%w: %q", shared.ErrSeparatorInField, field)
		}
	}
	return artist + KeySeparator + album + KeySeparator + title, nil
}

// MustEncodeKey is [EncodeKey] for known-good literals. It panics on error.
func MustEncodeKey(artist, album, title string) string {
	key, err := EncodeKey(artist, album, title)
	if err != nil {
		panic(err)
	}
	return key
}

// DecodeKey splits a composite key into artist, album, and title.
// Keys without exactly two separators fail with [shared.ErrMalformedCursor].
func DecodeKey(key string) (artist, album, title string, err error) {
	parts := strings.Split(key, KeySeparator)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: %q is not an artist/album/title key", shared.ErrMalformedCursor, key)
	}
	return parts[0], parts[1], parts[2], nil
}
