package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
)

// SelectAudioURL returns the URL of the highest bitrate audio-only format. The first of equal bitrates wins.
func SelectAudioURL(formats []models.Format) (string, error) {
	best := -1
	for i, f := range formats {
		if !f.HasAudio || f.HasVideo {
			continue
		}
		if best < 0 || f.Bitrate > formats[best].Bitrate {
			best = i
		}
	}

	if best < 0 {
		return "", fmt.Errorf("%w: no audio-only format among %d", shared.ErrNoPlayableFormat, len(formats))
	}
	return formats[best].URL, nil
}

// FirstFormatURL returns the URL of the first format regardless of its kind.
func FirstFormatURL(formats []models.Format) (string, error) {
	if len(formats) == 0 {
		return "", fmt.Errorf("%w: no formats", shared.ErrNoPlayableFormat)
	}
	return formats[0].URL, nil
}

// StreamResolver resolves source references to audio stream URIs.
type StreamResolver struct {
	extractor services.Extractor
}

// NewStreamResolver creates a resolver backed by extractor.
func NewStreamResolver(extractor services.Extractor) *StreamResolver {
	return &StreamResolver{extractor: extractor}
}

// Resolve extracts sourceRef and selects its best audio-only stream.
func (r *StreamResolver) Resolve(ctx context.Context, sourceRef string) (string, error) {
	info, err := r.extractor.Extract(ctx, sourceRef)
	if err != nil {
		if errors.Is(err, shared.ErrExternalResolution) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", shared.ErrExternalResolution, err)
	}
	return SelectAudioURL(info.Formats)
}
