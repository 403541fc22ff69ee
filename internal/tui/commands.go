package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flickgrid/internal/domain"
	"flickgrid/internal/gallery"
)

const (
	searchTimeout = 60 * time.Second
	imageTimeout  = 30 * time.Second

	statusDuration = 3 * time.Second
	tickInterval   = 100 * time.Millisecond
)

// SearchCmd runs a search through the gallery service. The result set is
// already in the store by the time the message arrives.
func SearchCmd(svc *gallery.Service, term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		set, err := svc.Search(ctx, term)
		if err != nil {
			return ErrMsg{Err: err, Context: "search failed"}
		}
		return SearchCompletedMsg{Set: set}
	}
}

// LoadLargeImageCmd fetches a photo's large image for the expanded view
func LoadLargeImageCmd(svc *gallery.Service, photo *domain.Photo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), imageTimeout)
		defer cancel()

		buf, err := svc.LoadLargeImage(ctx, photo)
		if err != nil {
			return ErrMsg{Err: err, Context: "image load failed"}
		}
		return LargeImageLoadedMsg{Photo: photo, Buf: buf}
	}
}

// TickCmd schedules the next spinner frame
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// StatusCmd emits a transient status message
func StatusCmd(message string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: message, IsError: isError}
	}
}
