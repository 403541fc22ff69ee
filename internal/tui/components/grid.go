package components

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"flickgrid/internal/domain"
	"flickgrid/internal/gallery"
	"flickgrid/internal/tui/styles"
)

// Layout constants for grid
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Padding inside the border
	HorizontalPadding = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Extra safety margin for item width calculations
	ItemWidthMargin = 2
)

type rowKind int

const (
	rowSection rowKind = iota
	rowPhoto
)

// gridRow is one display line: either a section header or a photo entry.
// Photo rows cache the decoded thumbnail dimensions so View stays cheap.
type gridRow struct {
	kind    rowKind
	section int
	index   int
	photo   *domain.Photo
	term    string
	count   int
	dims    string
	size    int
}

// Grid browses the result store as a flat list of section headers and
// photo rows. The cursor only ever rests on photo rows.
type Grid struct {
	store *gallery.Store

	rows    []gridRow
	visible []int // indices into rows after filtering
	cursor  int   // index into visible; -1 when no photo rows

	offset     int
	maxVisible int

	width  int
	height int

	showTitles bool

	// Share mode selection
	shareMode bool
	selected  map[*domain.Photo]struct{}

	// Photo grabbed for reordering
	grabbed *domain.Photo

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
}

// NewGrid creates a grid over the given store
func NewGrid(store *gallery.Store, showTitles bool) Grid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	g := Grid{
		store:       store,
		showTitles:  showTitles,
		cursor:      -1,
		selected:    map[*domain.Photo]struct{}{},
		filterInput: ti,
	}
	g.Reload()
	return g
}

// Reload rebuilds the rows from the store. Call after every store mutation;
// the cursor stays on the same photo when it still exists.
func (g *Grid) Reload() {
	current := g.CurrentPhoto()

	g.rows = g.rows[:0]
	for section := 0; section < g.store.SectionCount(); section++ {
		set, err := g.store.Section(section)
		if err != nil {
			continue
		}
		g.rows = append(g.rows, gridRow{
			kind:    rowSection,
			section: section,
			term:    set.Term,
			count:   len(set.Photos),
		})
		for index, photo := range set.Photos {
			row := gridRow{
				kind:    rowPhoto,
				section: section,
				index:   index,
				photo:   photo,
				size:    len(photo.Thumbnail()),
			}
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(photo.Thumbnail())); err == nil {
				row.dims = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
			}
			g.rows = append(g.rows, row)
		}
	}

	g.applyFilter()
	if current == nil || !g.CursorToPhoto(current) {
		g.snapCursor()
	}
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcMaxVisible()
}

func (g *Grid) recalcMaxVisible() {
	interiorHeight := g.height - BorderHeight
	g.maxVisible = interiorHeight - ScrollIndicatorLines
	if g.filterActive {
		g.maxVisible--
	}
	if g.maxVisible < 1 {
		g.maxVisible = 1
	}
}

// IsEmpty returns true when the store holds no photos
func (g Grid) IsEmpty() bool {
	for _, row := range g.rows {
		if row.kind == rowPhoto {
			return false
		}
	}
	return true
}

// CursorPosition returns the store coordinates under the cursor
func (g Grid) CursorPosition() (section, index int, ok bool) {
	row, ok := g.cursorRow()
	if !ok {
		return 0, 0, false
	}
	return row.section, row.index, true
}

// CurrentPhoto returns the photo under the cursor, or nil
func (g Grid) CurrentPhoto() *domain.Photo {
	row, ok := g.cursorRow()
	if !ok {
		return nil
	}
	return row.photo
}

func (g Grid) cursorRow() (gridRow, bool) {
	if g.cursor < 0 || g.cursor >= len(g.visible) {
		return gridRow{}, false
	}
	row := g.rows[g.visible[g.cursor]]
	if row.kind != rowPhoto {
		return gridRow{}, false
	}
	return row, true
}

// CursorToPhoto moves the cursor onto the given photo. Returns false when
// the photo is not among the visible rows.
func (g *Grid) CursorToPhoto(photo *domain.Photo) bool {
	for pos, ri := range g.visible {
		row := g.rows[ri]
		if row.kind == rowPhoto && row.photo == photo {
			g.cursor = pos
			g.ensureVisible()
			return true
		}
	}
	return false
}

// snapCursor places the cursor on the nearest photo row, preferring the
// current position, then forward, then backward.
func (g *Grid) snapCursor() {
	if g.cursor < 0 {
		g.cursor = 0
	}
	if g.cursor >= len(g.visible) {
		g.cursor = len(g.visible) - 1
	}
	if pos := g.scanPhoto(g.cursor, 1); pos >= 0 {
		g.cursor = pos
	} else if pos := g.scanPhoto(g.cursor, -1); pos >= 0 {
		g.cursor = pos
	} else {
		g.cursor = -1
	}
	g.ensureVisible()
}

// scanPhoto finds the first photo row at or beyond from in the given
// direction, returning -1 when none exists.
func (g Grid) scanPhoto(from, dir int) int {
	for pos := from; pos >= 0 && pos < len(g.visible); pos += dir {
		if g.rows[g.visible[pos]].kind == rowPhoto {
			return pos
		}
	}
	return -1
}

func (g *Grid) moveCursor(dir int) {
	if pos := g.scanPhoto(g.cursor+dir, dir); pos >= 0 {
		g.cursor = pos
		g.ensureVisible()
	}
}

func (g *Grid) ensureVisible() {
	if g.cursor < 0 {
		g.offset = 0
		return
	}
	if g.cursor < g.offset {
		g.offset = g.cursor
	}
	if g.cursor >= g.offset+g.maxVisible {
		g.offset = g.cursor - g.maxVisible + 1
	}
}

// SetShareMode toggles multi-select; leaving share mode drops the selection
func (g *Grid) SetShareMode(on bool) {
	g.shareMode = on
	if !on {
		g.selected = map[*domain.Photo]struct{}{}
	}
}

// InShareMode reports whether multi-select is active
func (g Grid) InShareMode() bool {
	return g.shareMode
}

// ToggleSelected flips the selection mark under the cursor
func (g *Grid) ToggleSelected() {
	photo := g.CurrentPhoto()
	if photo == nil {
		return
	}
	if _, ok := g.selected[photo]; ok {
		delete(g.selected, photo)
	} else {
		g.selected[photo] = struct{}{}
	}
}

// SelectedPhotos returns the marked photos in store order
func (g Grid) SelectedPhotos() []*domain.Photo {
	var out []*domain.Photo
	for _, row := range g.rows {
		if row.kind != rowPhoto {
			continue
		}
		if _, ok := g.selected[row.photo]; ok {
			out = append(out, row.photo)
		}
	}
	return out
}

// SetGrabbed marks a photo as grabbed for reordering; nil drops the mark
func (g *Grid) SetGrabbed(photo *domain.Photo) {
	g.grabbed = photo
}

// Grabbed returns the photo currently grabbed, or nil
func (g Grid) Grabbed() *domain.Photo {
	return g.grabbed
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.recalcMaxVisible()
}

// IsFiltering returns true when filtered results are showing
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true while the filter input is focused
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all rows
func (g *Grid) ClearFilter() {
	g.clearFilter()
	g.snapCursor()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.recalcMaxVisible()
	g.applyFilter()
}

// applyFilter rebuilds the visible row set. Headers always stay; photo rows
// are fuzzy matched against their display titles.
func (g *Grid) applyFilter() {
	query := strings.ToLower(g.filterInput.Value())
	if g.filterActive {
		g.filterQuery = g.filterInput.Value()
	}

	if !g.filterActive || query == "" {
		g.visible = g.visible[:0]
		for ri := range g.rows {
			g.visible = append(g.visible, ri)
		}
		return
	}

	var photoRows []int
	var titles []string
	for ri, row := range g.rows {
		if row.kind != rowPhoto {
			continue
		}
		photoRows = append(photoRows, ri)
		titles = append(titles, strings.ToLower(row.photo.DisplayTitle()))
	}

	matched := map[int]struct{}{}
	for _, m := range fuzzy.Find(query, titles) {
		matched[photoRows[m.Index]] = struct{}{}
	}

	g.visible = g.visible[:0]
	for ri, row := range g.rows {
		if row.kind == rowSection {
			g.visible = append(g.visible, ri)
			continue
		}
		if _, ok := matched[ri]; ok {
			g.visible = append(g.visible, ri)
		}
	}

	g.cursor = 0
	g.offset = 0
	g.snapCursor()
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	// Typing mode: route keys into the filter input
	if g.filterActive && g.filterInput.Focused() {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				g.clearFilter()
				g.snapCursor()
				return g, nil
			case "enter":
				g.filterInput.Blur()
				return g, nil
			case "backspace":
				if g.filterInput.Value() == "" {
					g.clearFilter()
					g.snapCursor()
					return g, nil
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	// Filter accepted but still narrowing the list
	if g.filterActive {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				g.clearFilter()
				g.snapCursor()
				return g, nil
			case "/":
				g.filterInput.Focus()
				return g, nil
			}
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			g.moveCursor(1)
		case "k", "up":
			g.moveCursor(-1)
		case "g":
			g.cursor = 0
			g.offset = 0
			g.snapCursor()
		case "G":
			g.cursor = len(g.visible) - 1
			if pos := g.scanPhoto(g.cursor, -1); pos >= 0 {
				g.cursor = pos
			}
			g.ensureVisible()
		case "ctrl+d":
			g.cursor += g.maxVisible / 2
			g.snapCursor()
		case "ctrl+u":
			g.cursor -= g.maxVisible / 2
			if g.cursor < 0 {
				g.cursor = 0
			}
			g.snapCursor()
		case " ":
			if g.shareMode {
				g.ToggleSelected()
			}
		}
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	style := styles.ActiveBorder

	content := g.renderList()

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(content)
}

func (g Grid) renderList() string {
	itemWidth := g.width - BorderWidth - HorizontalPadding - ItemWidthMargin

	if len(g.visible) == 0 {
		empty := styles.DimStyle.Render("No results yet. Press s to search.")
		if g.filterActive && g.filterQuery != "" {
			empty = styles.DimStyle.Render("No matches")
		}
		return " \n" + empty + "\n "
	}

	var lines []string

	end := g.offset + g.maxVisible
	if end > len(g.visible) {
		end = len(g.visible)
	}

	for pos := g.offset; pos < end; pos++ {
		row := g.rows[g.visible[pos]]
		if row.kind == rowSection {
			lines = append(lines, g.renderSectionRow(row, itemWidth))
			continue
		}
		lines = append(lines, g.renderPhotoRow(row, pos == g.cursor, itemWidth))
	}

	header := " "
	if g.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < len(g.visible) {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := header + "\n" + strings.Join(lines, "\n") + "\n" + footer

	if g.filterActive {
		content += "\n" + g.renderFilterBar()
	}

	return content
}

func (g Grid) renderSectionRow(row gridRow, width int) string {
	term := styles.Truncate(row.term, width-14)
	count := fmt.Sprintf("  %d photos", row.count)
	return " " + styles.SectionStyle.Render(term) + styles.DimStyle.Render(count)
}

func (g Grid) renderPhotoRow(row gridRow, selected bool, width int) string {
	marker := styles.PhotoChar
	markerFg := styles.FlickrPink
	if row.photo == g.grabbed {
		marker = styles.GrabbedChar
	} else if _, ok := g.selected[row.photo]; ok {
		marker = styles.SelectedChar
		markerFg = styles.Green
	}

	label := row.photo.Descriptor.ID
	if g.showTitles {
		label = row.photo.DisplayTitle()
	}
	label = styles.Truncate(label, width-24)

	badge := ""
	if row.dims != "" {
		badge = " " + row.dims
	}
	sizeBadge := fmt.Sprintf(" %.1f KB", float64(row.size)/1024)

	dimGray := styles.DimGray
	parts := []styles.RowPart{
		{Text: "  " + marker, Foreground: &markerFg},
		{Text: " " + label, Foreground: nil},
		{Text: badge, Foreground: &dimGray},
		{Text: sizeBadge, Foreground: &dimGray},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()

	countStr := ""
	if g.filterQuery != "" {
		shown := 0
		for _, ri := range g.visible {
			if g.rows[ri].kind == rowPhoto {
				shown++
			}
		}
		total := 0
		for _, row := range g.rows {
			if row.kind == rowPhoto {
				total++
			}
		}
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", shown, total))
	}

	return input + countStr
}
