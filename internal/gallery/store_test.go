package gallery

import (
	"errors"
	"testing"

	"flickgrid/internal/domain"
)

func photoSet(term string, ids ...string) *domain.SearchResultSet {
	set := &domain.SearchResultSet{Term: term}
	for _, id := range ids {
		set.Photos = append(set.Photos, domain.NewPhoto(domain.PhotoDescriptor{ID: id}, ""))
	}
	return set
}

func sectionIDs(t *testing.T, s *Store, section int) []string {
	t.Helper()
	set, err := s.Section(section)
	if err != nil {
		t.Fatalf("Section(%d) error = %v", section, err)
	}
	ids := make([]string, len(set.Photos))
	for i, p := range set.Photos {
		ids[i] = p.Descriptor.ID
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPrependOrdersMostRecentFirst(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "1"))
	s.Prepend(photoSet("b", "2"))

	if s.SectionCount() != 2 {
		t.Fatalf("SectionCount() = %d, want 2", s.SectionCount())
	}

	first, err := s.Section(0)
	if err != nil {
		t.Fatalf("Section(0) error = %v", err)
	}
	if first.Term != "b" {
		t.Errorf("section 0 term = %q, want %q (most recent first)", first.Term, "b")
	}

	second, _ := s.Section(1)
	if second.Term != "a" {
		t.Errorf("section 1 term = %q, want %q", second.Term, "a")
	}
}

func TestReadAccessors(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "x", "y", "z"))

	count, err := s.ItemCount(0)
	if err != nil || count != 3 {
		t.Fatalf("ItemCount(0) = %d, %v, want 3, nil", count, err)
	}

	photo, err := s.Item(0, 1)
	if err != nil {
		t.Fatalf("Item(0, 1) error = %v", err)
	}
	if photo.Descriptor.ID != "y" {
		t.Errorf("Item(0, 1) ID = %q, want %q", photo.Descriptor.ID, "y")
	}
}

func TestReadAccessorsOutOfRange(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "x"))

	tests := []struct {
		name string
		call func() error
	}{
		{"ItemCount negative", func() error { _, err := s.ItemCount(-1); return err }},
		{"ItemCount past end", func() error { _, err := s.ItemCount(1); return err }},
		{"Item bad section", func() error { _, err := s.Item(2, 0); return err }},
		{"Item negative index", func() error { _, err := s.Item(0, -1); return err }},
		{"Item past end", func() error { _, err := s.Item(0, 1); return err }},
		{"Section negative", func() error { _, err := s.Section(-1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, domain.ErrIndexOutOfRange) {
				t.Errorf("error = %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}

func TestMoveItemWithinSection(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "x", "y", "z"))

	if err := s.MoveItem(0, 2, 0, 0); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	assertIDs(t, sectionIDs(t, s, 0), []string{"z", "x", "y"})
}

func TestMoveItemToEndOfSection(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "x", "y", "z"))

	if err := s.MoveItem(0, 0, 0, 2); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	assertIDs(t, sectionIDs(t, s, 0), []string{"y", "z", "x"})
}

func TestMoveItemAcrossSections(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "1", "2"))
	s.Prepend(photoSet("b", "3", "4"))

	// Move "1" from the older section into the middle of the newer one.
	if err := s.MoveItem(1, 0, 0, 1); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	assertIDs(t, sectionIDs(t, s, 0), []string{"3", "1", "4"})
	assertIDs(t, sectionIDs(t, s, 1), []string{"2"})
}

func TestMoveItemAcrossSectionsToEnd(t *testing.T) {
	s := NewStore()
	s.Prepend(photoSet("a", "1"))
	s.Prepend(photoSet("b", "2", "3"))

	// Across sections the destination may be one past the last item.
	if err := s.MoveItem(1, 0, 0, 2); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	assertIDs(t, sectionIDs(t, s, 0), []string{"2", "3", "1"})

	count, _ := s.ItemCount(1)
	if count != 0 {
		t.Errorf("source section has %d items, want 0", count)
	}
}

func TestMoveItemOutOfRangeLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name                   string
		fromSec, fromIdx       int
		toSec, toIdx           int
	}{
		{"bad source section", 5, 0, 0, 0},
		{"bad source index", 0, 3, 0, 0},
		{"bad target section", 0, 0, 5, 0},
		{"negative target index", 0, 0, 0, -1},
		{"target past end within section", 0, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Prepend(photoSet("a", "x", "y", "z"))

			err := s.MoveItem(tt.fromSec, tt.fromIdx, tt.toSec, tt.toIdx)
			if !errors.Is(err, domain.ErrIndexOutOfRange) {
				t.Fatalf("MoveItem() error = %v, want ErrIndexOutOfRange", err)
			}
			assertIDs(t, sectionIDs(t, s, 0), []string{"x", "y", "z"})
		})
	}
}
