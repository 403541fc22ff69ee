package gallery

import (
	"context"
	"log/slog"

	"flickgrid/internal/domain"
)

// SearchClient is the remote API surface the service depends on.
type SearchClient interface {
	// Search runs one remote search; every photo in the returned set
	// already carries its thumbnail.
	Search(ctx context.Context, term string) (*domain.SearchResultSet, error)

	// FetchLargeImage downloads the large image variant for a descriptor.
	FetchLargeImage(ctx context.Context, desc domain.PhotoDescriptor) ([]byte, error)
}

// Service orchestrates the search client and the result store.
type Service struct {
	client SearchClient
	store  *Store
	logger *slog.Logger
}

// NewService creates a new gallery service.
func NewService(client SearchClient, store *Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, store: store, logger: logger}
}

// Store exposes the result store for read access and reordering.
func (s *Service) Store() *Store {
	return s.store
}

// Search runs a remote search and prepends the delivered set to the store.
// The store is untouched when the search fails.
func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResultSet, error) {
	set, err := s.client.Search(ctx, term)
	if err != nil {
		s.logger.Error("search failed", "term", term, "error", err)
		return nil, err
	}
	s.store.Prepend(set)
	s.logger.Info("search finished", "term", term, "results", len(set.Photos))
	return set, nil
}

// LoadLargeImage fetches and attaches the large variant for a photo. The
// buffer is write-once, so an already loaded photo is returned as is.
func (s *Service) LoadLargeImage(ctx context.Context, photo *domain.Photo) ([]byte, error) {
	if buf := photo.LargeImage(); buf != nil {
		return buf, nil
	}

	buf, err := s.client.FetchLargeImage(ctx, photo.Descriptor)
	if err != nil {
		s.logger.Error("failed to load large image", "id", photo.Descriptor.ID, "error", err)
		return nil, err
	}
	photo.SetLargeImage(buf)
	s.logger.Debug("large image loaded", "id", photo.Descriptor.ID, "bytes", len(buf))
	return buf, nil
}

// MoveItem relocates a photo within or across sections (drag-reorder).
func (s *Service) MoveItem(fromSection, fromIndex, toSection, toIndex int) error {
	if err := s.store.MoveItem(fromSection, fromIndex, toSection, toIndex); err != nil {
		s.logger.Error("move rejected", "error", err,
			"fromSection", fromSection, "fromIndex", fromIndex,
			"toSection", toSection, "toIndex", toIndex)
		return err
	}
	s.logger.Debug("moved item",
		"fromSection", fromSection, "fromIndex", fromIndex,
		"toSection", toSection, "toIndex", toIndex)
	return nil
}
