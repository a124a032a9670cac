package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/marauder/internal/catalog"
	"github.com/five82/marauder/internal/prefs"
	"github.com/five82/marauder/internal/present"
	"github.com/five82/marauder/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   catalog.Fetcher
	Labels    present.Labels
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
	LogPath   string // file shown by the diagnostics overlay
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   catalog.Fetcher
	labels    present.Labels
	logger    *zap.Logger
	prefsPath string
	logPath   string
	keys      keyMap

	// Terminal
	theme  Theme
	width  int
	height int
	ready  bool

	// Browser state
	vs        *state.ViewState
	spinner   spinner.Model
	search    textinput.Model
	searching bool
	sortIdx   int
	cursor    int
	rowOffset int

	// Detail overlay
	detailViewport viewport.Model

	// Help and diagnostics overlays
	modal Modal
}

// New creates the Bubble Tea model. The catalog is requested from Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	labels := opts.Labels
	if labels.Locale == "" {
		labels = present.LabelsFor("")
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	ti := textinput.New()
	ti.Placeholder = labels.SearchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.Width = searchFieldWidth

	return Model{
		ctx:            ctx,
		fetcher:        opts.Fetcher,
		labels:         labels,
		logger:         logger,
		prefsPath:      prefsPath,
		logPath:        opts.LogPath,
		keys:           DefaultKeyMap(),
		theme:          theme,
		vs:             state.New(),
		spinner:        sp,
		search:         ti,
		detailViewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model. It is the only place the catalog load is issued.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.ctx, m.fetcher))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureCursorVisible()
		if m.vs.Selected != nil {
			m.refreshDetail()
		}
		if m.modal != nil {
			var cmd tea.Cmd
			m.modal, cmd, _ = m.modal.Update(msg, m.keys)
			return m, cmd
		}
		return m, nil

	case catalogLoadedMsg:
		m.vs.Loaded(msg.records, msg.err)
		m.resetCursor()
		if msg.err == nil {
			m.logger.Debug("catalog ready", zap.Int("records", len(msg.records)))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.vs.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case diagnosticsMsg:
		if m.modal != nil {
			var cmd tea.Cmd
			m.modal, cmd, _ = m.modal.Update(msg, m.keys)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.labels.Loading
	}
	if m.vs.Loading {
		return m.renderLoading()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.vs.Selected != nil {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey routes keyboard input to the topmost layer.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		var (
			cmd  tea.Cmd
			done bool
		)
		m.modal, cmd, done = m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	if m.vs.Loading {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.vs.Selected != nil {
		return m.handleDetailKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes keys for the grid, controls and pager.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = newHelpModal(m.keys)
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.modal = newDiagnosticsModal(m.logPath, m.theme, m.width, m.height)
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextHouse):
		m.setHouseIndex(m.houseIndex() + 1)
	case key.Matches(msg, m.keys.PrevHouse):
		m.setHouseIndex(m.houseIndex() - 1)
	case key.Matches(msg, m.keys.PickHouse):
		m.setHouseIndex(int(msg.Runes[0] - '0'))

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIdx = (m.sortIdx + 1) % len(m.labels.SortOptions)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.grid().columns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.grid().columns)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Open):
		items := m.vs.View().Items
		if m.cursor >= 0 && m.cursor < len(items) {
			m.openDetail(items[m.cursor])
		}

	case key.Matches(msg, m.keys.NextPage):
		if v := m.vs.View(); v.HasNext() {
			m.goToPage(v.Page + 1)
		}
	case key.Matches(msg, m.keys.PrevPage):
		if v := m.vs.View(); v.HasPrev() {
			m.goToPage(v.Page - 1)
		}
	case key.Matches(msg, m.keys.FirstPage):
		m.goToPage(1)
	case key.Matches(msg, m.keys.LastPage):
		if v := m.vs.View(); v.TotalPages > 0 {
			m.goToPage(v.TotalPages)
		}
	}

	return m, nil
}

// handleSearchKey feeds the focused search box and applies the text live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.LeaveInput) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.vs.SetSearch(after)
		m.resetCursor()
	}
	return m, cmd
}

// handleDetailKey processes keys while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.vs.ClearSelection()
	case key.Matches(msg, m.keys.ScrollUp):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfPageDown()
	}
	return m, nil
}

func (m *Model) openDetail(ch *catalog.Character) {
	m.vs.Select(ch)
	m.refreshDetail()
	m.detailViewport.GotoTop()
}

func (m *Model) goToPage(page int) {
	m.vs.SetPage(page)
	m.resetCursor()
}

// resetCursor returns to the first card and scrolls the grid to the top.
func (m *Model) resetCursor() {
	m.cursor = 0
	m.rowOffset = 0
}

func (m *Model) moveCursor(delta int) {
	count := len(m.vs.View().Items)
	if count == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the grid so the cursor's row is on screen.
func (m *Model) ensureCursorVisible() {
	if !m.ready {
		return
	}
	g := m.grid()
	row := m.cursor / g.columns
	if row < m.rowOffset {
		m.rowOffset = row
	}
	if row >= m.rowOffset+g.rows {
		m.rowOffset = row - g.rows + 1
	}
	totalRows := (len(m.vs.View().Items) + g.columns - 1) / g.columns
	if maxOffset := totalRows - g.rows; m.rowOffset > maxOffset {
		m.rowOffset = max(maxOffset, 0)
	}
}

func (m Model) grid() gridLayout {
	return computeGridLayout(m.width, m.height)
}

// houseOptions lists the selector entries; index 0 is every house.
func houseOptions() []string {
	options := []string{state.HouseAll}
	for _, h := range catalog.Houses() {
		options = append(options, string(h))
	}
	return options
}

func (m Model) houseIndex() int {
	for i, h := range houseOptions() {
		if h == m.vs.HouseFilter {
			return i
		}
	}
	return 0
}

func (m *Model) setHouseIndex(i int) {
	options := houseOptions()
	i = ((i % len(options)) + len(options)) % len(options)
	if options[i] == m.vs.HouseFilter {
		return
	}
	m.vs.SetHouse(options[i])
	m.resetCursor()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	if m.vs.Selected != nil {
		m.refreshDetail()
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save theme preference failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// Messages

type catalogLoadedMsg struct {
	records []catalog.Character
	err     error
}

// Commands

func loadCatalogCmd(ctx context.Context, fetcher catalog.Fetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return catalogLoadedMsg{}
		}
		records, err := fetcher.Load(ctx)
		return catalogLoadedMsg{records: records, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
