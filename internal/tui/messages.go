package tui

import "flickgrid/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchCompletedMsg signals that a search finished and its result set was
// prepended to the store
type SearchCompletedMsg struct {
	Set *domain.SearchResultSet
}

// LargeImageLoadedMsg signals that a photo's large image is attached
type LargeImageLoadedMsg struct {
	Photo *domain.Photo
	Buf   []byte
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg drives the spinner animation
type TickMsg struct{}
