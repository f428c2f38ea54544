package models

import (
	"errors"
	"testing"

	"github.com/spring01/music/internal/shared"
)

func TestKeyCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tc := []struct {
			artist, album, title string
		}{
			{"Avril Lavigne", "Let Go", "Complicated"},
			{"周杰伦", "叶惠美", "她的睫毛"},
			{"", "", ""},
			{"A|B", "||", "C ||"},
		}

		for _, tt := range tc {
			key, err := EncodeKey(tt.artist, tt.album, tt.title)
			if err != nil {
				t.Fatalf("EncodeKey(%q, %q, %q) failed: %v", tt.artist, tt.album, tt.title, err)
			}

			artist, album, title, err := DecodeKey(key)
			if err != nil {
				t.Fatalf("DecodeKey(%q) failed: %v", key, err)
			}
			if artist != tt.artist || album != tt.album || title != tt.title {
				t.Errorf("round trip mismatch: got (%q, %q, %q), want (%q, %q, %q)",
					artist, album, title, tt.artist, tt.album, tt.title)
			}
		}
	})

	t.Run("encode format", func(t *testing.T) {
		if got := MustEncodeKey("A", "B", "C"); got != "A ||| B ||| C" {
			t.Errorf("expected %q, got %q", "A ||| B ||| C", got)
		}
	})

	t.Run("encode rejects separator", func(t *testing.T) {
		_, err := EncodeKey("A ||| B", "album", "title")
		if !errors.Is(err, shared.ErrSeparatorInField) {
			t.Errorf("expected ErrSeparatorInField, got %v", err)
		}
	})

	t.Run("decode rejects malformed keys", func(t *testing.T) {
		for _, key := range []string{"", "M", "A ||| B", "A ||| B ||| C ||| D", "12"} {
			if _, _, _, err := DecodeKey(key); !errors.Is(err, shared.ErrMalformedCursor) {
				t.Errorf("DecodeKey(%q): expected ErrMalformedCursor, got %v", key, err)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("CatalogRow", func(t *testing.T) {
		ok := &CatalogRow{ArtistAlbumTitle: "A ||| B ||| C", IsMusic: 1, Link: "https://music.youtube.com/watch?v=x"}
		if err := ok.Validate(); err != nil {
			t.Errorf("expected valid row, got %v", err)
		}

		noLink := &CatalogRow{ArtistAlbumTitle: "A ||| B ||| C", IsMusic: 1}
		if err := noLink.Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}

		badKey := &CatalogRow{ArtistAlbumTitle: "nope", Link: "x"}
		if err := badKey.Validate(); !errors.Is(err, shared.ErrMalformedCursor) {
			t.Errorf("expected ErrMalformedCursor, got %v", err)
		}
	})

	t.Run("KnownPlaylist", func(t *testing.T) {
		if err := (&KnownPlaylist{Title: "Classical", Link: "https://www.youtube.com/playlist?list=PL1"}).Validate(); err != nil {
			t.Errorf("expected valid playlist, got %v", err)
		}
		if err := (&KnownPlaylist{Title: " ", Link: "x"}).Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
