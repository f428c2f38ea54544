// Package models defines the entities shared by the queue, store, and skill layers.
//
// The package contains three groups of types:
//
// 1. Playback results
//   - [Entry] : a resolved, playable item returned by every queue navigation call
//
// 2. Stored rows
//   - [CatalogRow] : one track in the global catalog, keyed by its composite key
//   - [PlaylistRecord] : a materialised, shuffled playlist order
//   - [KnownPlaylist] : a playlist registered with the voice catalog
//
// 3. External media descriptions
//   - [SourceInfo] : metadata and format candidates for one source reference
//   - [Format] : a single playable stream candidate
//
// The composite key codec ([EncodeKey], [DecodeKey]) lives here because it is both the catalog sort key
// and the cursor handed to callers.
package models
