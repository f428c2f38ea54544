// Package metadata turns extracted source information into display metadata and stream URIs.
//
// # Display Metadata
//
// [Resolve] is a best-effort heuristic over free-text descriptions:
//
//  1. Descriptions ending with [AutoGeneratedMarker] are machine-written liner notes. Line 3 holds
//     "title · artist" and line 5 holds the album.
//  2. Any other description is collapsed to one line; a missing description falls back to the source
//     title. That text becomes the artist when the source has a title, otherwise the structured media
//     data (when present) supplies artist and title.
//
// Fields left unset are [Unknown]. Resolve never fails.
//
// # Stream Selection
//
// [SelectAudioURL] picks the highest bitrate audio-only format. [FirstFormatURL] takes the first format as is.
// [StreamResolver] combines an extractor with [SelectAudioURL].
package metadata
