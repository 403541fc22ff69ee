package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidQuery indicates the search term produced an empty query
	// after escaping; no request was made
	ErrInvalidQuery = errors.New("search term is not a valid query")

	// ErrTransport indicates the search request never produced a response
	ErrTransport = errors.New("search request failed")

	// ErrMalformedResponse indicates the response body could not be
	// interpreted as a search result envelope
	ErrMalformedResponse = errors.New("malformed search response")

	// ErrAPIFailure indicates the remote API reported a logical failure
	ErrAPIFailure = errors.New("search API reported failure")

	// ErrImageFetch indicates a large image download failed
	ErrImageFetch = errors.New("image fetch failed")

	// ErrIndexOutOfRange indicates a section or item index outside the store
	ErrIndexOutOfRange = errors.New("index out of range")
)
