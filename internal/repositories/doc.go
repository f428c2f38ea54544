// Package repositories implements the stores behind the queues.
//
// Key Implementations:
//   - [CatalogRepository] : the WebMusic table, ranged over its (IsMusic, ArtistAlbumTitle) index
//   - [RedisCatalogStore] : the same catalog as a Redis sorted set walked with ZRANGEBYLEX
//   - [PlaylistRepository] : PlaylistMusics, the materialised shuffled order of each playlist
//   - [KnownPlaylistRepository] : WebPlaylist, the playlists registered with the voice catalog
//
// Directional catalog queries are strict: forward returns the first key greater than the cursor and backward
// the first key less than it. Wrap-around is the caller's concern.
package repositories
