// Package skill decodes voice platform media requests, runs them against the queues and builds the responses.
//
// # Requests
//
// Each supported directive decodes into its own request type:
//   - [GetPlayableContentRequest] : Alexa.Media.Search GetPlayableContent, selecting a queue by criteria
//   - [InitiateRequest] : Alexa.Media.Playback Initiate, starting playback of a queue
//   - [GetNextItemRequest] and [GetPreviousItemRequest] : Alexa.Audio.PlayQueue navigation from the current item
//
// [ParseRequest] rejects unknown directives with [shared.ErrUnsupportedRequest] and missing fields with
// [shared.ErrInvalidRequest].
//
// # Responses
//
// Responses echo the directive name with a ".Response" suffix and carry a fresh message id. Every item's
// stream is valid for 24 hours from resolution.
//
// Handling is all-or-nothing: any failure aborts the request and no partial payload is produced.
package skill
