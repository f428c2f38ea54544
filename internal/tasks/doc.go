// Package tasks runs the batch jobs that feed the stores the queues read.
//
// # Operations
//
//  1. [Registrar.Register] : registers playlists with the voice catalog
//     - Looks up each playlist link's title (exactly one match required)
//     - Writes the {title, link} pair to the known playlists store
//     - Collects per-link failures instead of aborting
//
//  2. [Ingester.Ingest] : adds songs to the global catalog
//     - Extracts each link's metadata and derives artist, album, and title
//     - Writes the row keyed by "artist ||| album ||| title"
//
//  3. [BuildCatalog] : the AMAZON.MusicPlaylist catalog document for the registered names
//
// # Concurrency
//
// Batch operations fan out with at most [DefaultConcurrency] lookups in flight, paced by a token bucket limiter.
//
// # Progress Reporting
//
// Operations accept an optional channel of [ProgressUpdate]. Updates use select with default to prevent blocking.
package tasks
