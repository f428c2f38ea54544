// Package services implements the external media capabilities used by the queues.
//
// # Capabilities
//
// [Extractor] resolves a source reference to a [models.SourceInfo]: title, description, optional media data,
// and playable format candidates.
//
// [PlaylistLister] enumerates the items of an external playlist (bounded to [MaxPlaylistItems]) and looks up a
// playlist's title.
//
// # yt-dlp Implementation
//
// [YTDLPExtractor] and [YTDLPPlaylistLister] shell out to yt-dlp through go-ytdlp, reading its single-JSON dump.
// Formats are mapped to audio/video flags from the acodec/vcodec fields; bitrate is the audio bitrate when
// reported, otherwise the total bitrate.
//
// # Data API Implementation
//
// [DataAPIPlaylistLister] calls the YouTube Data API v3 with an API key. It is preferred when a key is
// configured since it does not need the yt-dlp binary.
//
// # Error Handling
//
// Failures are returned unchanged apart from wrapping; nothing here retries.
//   - [shared.ErrExternalResolution] : yt-dlp or the Data API failed, or returned unparsable output
//   - [shared.ErrPlaylistNotFound] : a title lookup matched zero or several playlists
//   - [shared.ErrInvalidPlaylistLink] : a link carries no playlist id
package services
