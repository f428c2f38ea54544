package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Navigation errors
	ErrNotFound            = fmt.Errorf("no entry found")
	ErrNoPlayableFormat    = fmt.Errorf("no playable audio format")
	ErrExternalResolution  = fmt.Errorf("external media resolution failed")
	ErrMalformedCursor     = fmt.Errorf("malformed cursor")
	ErrSeparatorInField    = fmt.Errorf("field contains key separator")
	ErrPlaylistNotFound    = fmt.Errorf("playlist not found")
	ErrInvalidPlaylistLink = fmt.Errorf("invalid playlist link")
	ErrUnsupportedCriteria = fmt.Errorf("unsupported selection criteria")

	// Request errors
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrUnsupportedRequest = fmt.Errorf("unsupported request")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
