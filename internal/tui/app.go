package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flickgrid/internal/domain"
	"flickgrid/internal/flickr"
	"flickgrid/internal/gallery"
	"flickgrid/internal/search"
	"flickgrid/internal/tui/components"
	"flickgrid/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateExpanded
	StateShare
	StateHelp
)

// Chrome layout constants
const (
	HeaderLines = 1
	FooterLines = 1

	historyLimit = 50
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Svc    *gallery.Service
	Logger *slog.Logger

	// UI components
	Grid components.Grid
	Keys KeyMap

	// Search prompt
	SearchInput textinput.Model
	History     []string
	Suggestions []string

	// Expanded photo
	Expanded *domain.Photo

	// Share link list
	ShareURLs []string

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int

	moveActive bool
}

// NewModel creates a new application model
func NewModel(svc *gallery.Service, showTitles bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "search photos..."
	ti.Prompt = "> "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.CharLimit = 200

	return Model{
		State:       StateBrowsing,
		Svc:         svc,
		Logger:      logger,
		Grid:        components.NewGrid(svc.Store(), showTitles),
		Keys:        DefaultKeyMap(),
		SearchInput: ti,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return TickCmd()
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Grid.SetSize(msg.Width, msg.Height-HeaderLines-FooterLines)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd()

	case SearchCompletedMsg:
		m.Loading = false
		m.Grid.Reload()
		m.StatusMsg = fmt.Sprintf("%d photos for %q", len(msg.Set.Photos), msg.Set.Term)
		m.StatusIsErr = false
		return m, ClearStatusCmd()

	case LargeImageLoadedMsg:
		// A completion for a photo expanded earlier must not hide the
		// spinner of the one loading now.
		if msg.Photo == m.Expanded {
			m.Loading = false
		}
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd()

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		m.Loading = false
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		m.Logger.Error("ui error", "context", msg.Context, "error", msg.Err)
		return m, ClearStatusCmd()
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateSearching:
		return m.handleSearchKeys(msg)
	case StateExpanded:
		return m.handleExpandedKeys(msg)
	case StateShare:
		if key.Matches(msg, m.Keys.Escape) || key.Matches(msg, m.Keys.Quit) {
			m.State = StateBrowsing
			m.ShareURLs = nil
		}
		return m, nil
	case StateHelp:
		if key.Matches(msg, m.Keys.Escape) || key.Matches(msg, m.Keys.Quit) || key.Matches(msg, m.Keys.Help) {
			m.State = StateBrowsing
		}
		return m, nil
	default:
		return m.handleBrowsingKeys(msg)
	}
}

func (m Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the grid filter captures input, only route keys to the grid.
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}

	// Reordering: vertical keys move the grabbed photo instead of the cursor.
	if m.moveActive {
		switch {
		case key.Matches(msg, m.Keys.Down):
			return m.moveGrabbed(1)
		case key.Matches(msg, m.Keys.Up):
			return m.moveGrabbed(-1)
		case key.Matches(msg, m.Keys.Move), key.Matches(msg, m.Keys.Escape):
			m.moveActive = false
			m.Grid.SetGrabbed(nil)
			return m, nil
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.State = StateSearching
		m.SearchInput.SetValue("")
		m.SearchInput.Focus()
		m.Suggestions = search.Suggest("", m.History)
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Expand):
		photo := m.Grid.CurrentPhoto()
		if photo == nil {
			return m, nil
		}
		m.State = StateExpanded
		m.Expanded = photo
		if photo.LargeImage() == nil {
			m.Loading = true
			return m, LoadLargeImageCmd(m.Svc, photo)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Filter):
		m.Grid.ToggleFilter()
		return m, nil

	case key.Matches(msg, m.Keys.ShareMode):
		m.Grid.SetShareMode(!m.Grid.InShareMode())
		return m, nil

	case key.Matches(msg, m.Keys.Share):
		return m.shareSelected()

	case key.Matches(msg, m.Keys.Move):
		photo := m.Grid.CurrentPhoto()
		if photo == nil {
			return m, nil
		}
		m.moveActive = true
		m.Grid.SetGrabbed(photo)
		return m, nil

	case key.Matches(msg, m.Keys.Escape):
		if m.Grid.IsFiltering() {
			m.Grid.ClearFilter()
			return m, nil
		}
		if m.Grid.InShareMode() {
			m.Grid.SetShareMode(false)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.State = StateBrowsing
		m.SearchInput.Blur()
		return m, nil
	case "enter":
		term := strings.TrimSpace(m.SearchInput.Value())
		if term == "" {
			return m, nil
		}
		m.State = StateBrowsing
		m.SearchInput.Blur()
		m.History = search.Remember(m.History, term, historyLimit)
		m.Loading = true
		m.StatusMsg = fmt.Sprintf("searching %q...", term)
		m.StatusIsErr = false
		return m, SearchCmd(m.Svc, term)
	case "tab":
		// Complete with the best suggestion
		if len(m.Suggestions) > 0 {
			m.SearchInput.SetValue(m.Suggestions[0])
			m.SearchInput.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.Suggestions = search.Suggest(m.SearchInput.Value(), m.History)
	return m, cmd
}

func (m Model) handleExpandedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape), key.Matches(msg, m.Keys.Expand):
		m.State = StateBrowsing
		m.Expanded = nil
		m.Loading = false
		return m, nil
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// shareSelected builds web links for the marked photos. With no marks the
// photo under the cursor is shared.
func (m Model) shareSelected() (tea.Model, tea.Cmd) {
	photos := m.Grid.SelectedPhotos()
	if len(photos) == 0 {
		if photo := m.Grid.CurrentPhoto(); photo != nil {
			photos = []*domain.Photo{photo}
		}
	}
	if len(photos) == 0 {
		return m, StatusCmd("nothing to share", true)
	}

	urls := make([]string, len(photos))
	for i, photo := range photos {
		urls[i] = flickr.LargeImageURL(photo.Descriptor)
		m.Logger.Info("shared photo", "id", photo.Descriptor.ID, "url", urls[i])
	}

	m.State = StateShare
	m.ShareURLs = urls
	m.Grid.SetShareMode(false)
	return m, nil
}

// moveGrabbed shifts the grabbed photo one slot in the given direction.
// Moving past a section edge carries the photo into the adjacent section.
func (m Model) moveGrabbed(dir int) (tea.Model, tea.Cmd) {
	section, index, ok := m.Grid.CursorPosition()
	if !ok {
		return m, nil
	}
	photo := m.Grid.Grabbed()
	store := m.Svc.Store()

	count, err := store.ItemCount(section)
	if err != nil {
		return m, nil
	}

	toSection, toIndex := section, index+dir
	if dir > 0 && toIndex > count-1 {
		if section == store.SectionCount()-1 {
			return m, nil
		}
		toSection, toIndex = section+1, 0
	}
	if dir < 0 && toIndex < 0 {
		if section == 0 {
			return m, nil
		}
		prevCount, err := store.ItemCount(section - 1)
		if err != nil {
			return m, nil
		}
		toSection, toIndex = section-1, prevCount
	}

	if err := m.Svc.MoveItem(section, index, toSection, toIndex); err != nil {
		return m, StatusCmd("move rejected: "+err.Error(), true)
	}

	m.Grid.Reload()
	m.Grid.CursorToPhoto(photo)
	return m, nil
}
