package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flickgrid/internal/domain"
	"flickgrid/internal/gallery"
)

type stubClient struct{}

func (stubClient) Search(ctx context.Context, term string) (*domain.SearchResultSet, error) {
	return &domain.SearchResultSet{Term: term}, nil
}

func (stubClient) FetchLargeImage(ctx context.Context, desc domain.PhotoDescriptor) ([]byte, error) {
	return []byte("img"), nil
}

func photoSet(term string, titles ...string) *domain.SearchResultSet {
	set := &domain.SearchResultSet{Term: term}
	for i, title := range titles {
		desc := domain.PhotoDescriptor{
			ID:     fmt.Sprintf("%s-%d", term, i),
			Farm:   6,
			Server: "5521",
			Secret: "s",
		}
		set.Photos = append(set.Photos, domain.NewPhoto(desc, title))
	}
	return set
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestModel builds the model exactly as main does: no extra wiring beyond
// NewModel plus the initial window size.
func newTestModel(t *testing.T, sets ...*domain.SearchResultSet) Model {
	t.Helper()

	store := gallery.NewStore()
	for i := len(sets) - 1; i >= 0; i-- {
		store.Prepend(sets[i])
	}
	svc := gallery.NewService(stubClient{}, store, discardLogger())

	m := NewModel(svc, true, discardLogger())
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func sendRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func modelCursorAt(t *testing.T, m Model, wantSection, wantIndex int) {
	t.Helper()
	section, index, ok := m.Grid.CursorPosition()
	if !ok {
		t.Fatal("cursor not on a photo row")
	}
	if section != wantSection || index != wantIndex {
		t.Fatalf("cursor at (%d,%d), want (%d,%d)", section, index, wantSection, wantIndex)
	}
}

func TestModelGridNavigation(t *testing.T) {
	m := newTestModel(t, photoSet("cats", "one", "two", "three"))

	// The grid must respond to keys as constructed by NewModel, with no
	// extra setup by the caller.
	modelCursorAt(t, m, 0, 0)

	m = sendRune(t, m, 'j')
	modelCursorAt(t, m, 0, 1)

	m = sendRune(t, m, 'j')
	modelCursorAt(t, m, 0, 2)

	m = sendRune(t, m, 'k')
	modelCursorAt(t, m, 0, 1)

	m = sendRune(t, m, 'G')
	modelCursorAt(t, m, 0, 2)

	m = sendRune(t, m, 'g')
	modelCursorAt(t, m, 0, 0)
}

func TestModelFilterTyping(t *testing.T) {
	m := newTestModel(t, photoSet("cats", "sunset cat", "harbor"))

	m = sendRune(t, m, '/')
	if !m.Grid.IsFilterTyping() {
		t.Fatal("filter input not focused after /")
	}

	for _, r := range "har" {
		m = sendRune(t, m, r)
	}
	if got := m.Grid.CurrentPhoto(); got == nil || got.Title != "harbor" {
		t.Fatalf("filter did not narrow to harbor, cursor on %v", got)
	}

	// Esc while typing clears the filter and returns keys to navigation.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Grid.IsFiltering() {
		t.Fatal("filter still active after esc")
	}
	m = sendRune(t, m, 'j')
	modelCursorAt(t, m, 0, 1)
}

func TestModelShareFlow(t *testing.T) {
	m := newTestModel(t, photoSet("cats", "one", "two"))

	m = sendRune(t, m, 'v')
	if !m.Grid.InShareMode() {
		t.Fatal("share mode not active after v")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Grid.SelectedPhotos(); len(got) != 1 {
		t.Fatalf("marked %d photos, want 1", len(got))
	}

	m = sendRune(t, m, 'y')
	if m.State != StateShare {
		t.Fatalf("state = %v after y, want StateShare", m.State)
	}
	if len(m.ShareURLs) != 1 {
		t.Fatalf("ShareURLs has %d entries, want 1", len(m.ShareURLs))
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State != StateBrowsing {
		t.Fatalf("state = %v after esc, want StateBrowsing", m.State)
	}
}

func TestModelMoveFlow(t *testing.T) {
	m := newTestModel(t, photoSet("cats", "one", "two"))
	store := m.Svc.Store()

	m = sendRune(t, m, 'm')
	if m.Grid.Grabbed() == nil {
		t.Fatal("no photo grabbed after m")
	}

	m = sendRune(t, m, 'j')
	first, err := store.Item(0, 0)
	if err != nil {
		t.Fatalf("Item(0,0) error: %v", err)
	}
	if first.Title != "two" {
		t.Fatalf("store order after move: first = %q, want %q", first.Title, "two")
	}
	modelCursorAt(t, m, 0, 1)

	m = sendRune(t, m, 'm')
	if m.Grid.Grabbed() != nil {
		t.Fatal("photo still grabbed after drop")
	}
}

func TestModelStaleLargeImageLoad(t *testing.T) {
	set := photoSet("cats", "one", "two")
	m := newTestModel(t, set)

	m.State = StateExpanded
	m.Expanded = set.Photos[0]
	m.Loading = true

	// A completion for a photo that is no longer expanded keeps the spinner.
	m = send(t, m, LargeImageLoadedMsg{Photo: set.Photos[1], Buf: []byte("img")})
	if !m.Loading {
		t.Fatal("stale completion cleared the loading state")
	}

	m = send(t, m, LargeImageLoadedMsg{Photo: set.Photos[0], Buf: []byte("img")})
	if m.Loading {
		t.Fatal("matching completion did not clear the loading state")
	}
}
