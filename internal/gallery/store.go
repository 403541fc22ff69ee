package gallery

import "flickgrid/internal/domain"

// Store is an ordered collection of search result sets, most recent first.
// It is owned by a single goroutine (the UI update loop); callers must not
// invoke mutating operations concurrently without external synchronization.
type Store struct {
	sets []*domain.SearchResultSet
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Prepend inserts a result set at the front. Sets are never appended and
// never removed automatically; the same photo may appear in several sets.
func (s *Store) Prepend(set *domain.SearchResultSet) {
	s.sets = append([]*domain.SearchResultSet{set}, s.sets...)
}

// SectionCount returns the number of result sets held.
func (s *Store) SectionCount() int {
	return len(s.sets)
}

// Section returns the result set at the given index.
func (s *Store) Section(section int) (*domain.SearchResultSet, error) {
	if section < 0 || section >= len(s.sets) {
		return nil, domain.ErrIndexOutOfRange
	}
	return s.sets[section], nil
}

// ItemCount returns the number of photos in a section.
func (s *Store) ItemCount(section int) (int, error) {
	set, err := s.Section(section)
	if err != nil {
		return 0, err
	}
	return len(set.Photos), nil
}

// Item returns the photo at the given section and index.
func (s *Store) Item(section, index int) (*domain.Photo, error) {
	set, err := s.Section(section)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(set.Photos) {
		return nil, domain.ErrIndexOutOfRange
	}
	return set.Photos[index], nil
}

// MoveItem removes one photo and reinserts it at the target position,
// preserving the relative order of every other photo. All indices are
// validated before any mutation, so a rejected move leaves the store
// unchanged.
func (s *Store) MoveItem(fromSection, fromIndex, toSection, toIndex int) error {
	src, err := s.Section(fromSection)
	if err != nil {
		return err
	}
	dst, err := s.Section(toSection)
	if err != nil {
		return err
	}
	if fromIndex < 0 || fromIndex >= len(src.Photos) {
		return domain.ErrIndexOutOfRange
	}

	// Within a section the item count is unchanged, so the target must be an
	// existing position. Across sections the target may be one past the end.
	limit := len(dst.Photos)
	if fromSection == toSection {
		limit = len(dst.Photos) - 1
	}
	if toIndex < 0 || toIndex > limit {
		return domain.ErrIndexOutOfRange
	}

	photo := src.Photos[fromIndex]
	src.Photos = append(src.Photos[:fromIndex], src.Photos[fromIndex+1:]...)

	dst.Photos = append(dst.Photos, nil)
	copy(dst.Photos[toIndex+1:], dst.Photos[toIndex:])
	dst.Photos[toIndex] = photo
	return nil
}
