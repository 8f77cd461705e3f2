package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"opacterm/internal/catalog"
	"opacterm/internal/config"
	"opacterm/internal/logging"
)

// View mode
type viewMode int

const (
	modeMenu viewMode = iota
	modeSearch
	modeResults
	modeDetail
	modeHoldingDetail
	modeFullBiblio
	modeMARCView
	modeSettings
	modeAbout
	modeHelp
)

// Model is the root Bubble Tea model. One screen is active at a time;
// Update and View dispatch on mode.
type Model struct {
	cfg      *config.Config
	provider catalog.Provider
	theme    Theme
	styles   Styles

	width  int
	height int
	now    time.Time

	mode     viewMode
	prevMode viewMode // where help and about return to

	// token correlates fetches with their result messages. Bumped on
	// every new fetch; stale results are discarded on arrival.
	token int

	menu     menuModel
	search   searchModel
	results  resultsModel
	detail   detailModel
	settings settingsModel

	// holdingIndex is the holding shown on the holding-detail screen.
	holdingIndex int

	// scroller displays the long read-only pages (full biblio, MARC
	// view, help, about).
	scroller viewport.Model

	spinner spinner.Model
}

// New builds the root model.
func New(cfg *config.Config, provider catalog.Provider) Model {
	theme := GetTheme(cfg.Theme)
	styles := NewStyles(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = styles.Text

	return Model{
		cfg:      cfg,
		provider: provider,
		theme:    theme,
		styles:   styles,
		now:      time.Now(),
		mode:     modeMenu,
		menu:     newMenuModel(),
		search:   newSearchModel(styles),
		settings: newSettingsModel(cfg, styles),
		spinner:  sp,
	}
}

// Init starts the header clock.
func (m Model) Init() tea.Cmd {
	return tickClock()
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroller = viewport.New(msg.Width, m.contentHeight())
		return m, nil

	case clockTickMsg:
		m.now = time.Now()
		return m, tickClock()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchResultsMsg:
		if msg.Token != m.token {
			logging.Debug("discarding stale search result", "token", msg.Token, "current", m.token)
			return m, nil
		}
		return m.handleSearchResults(msg)

	case detailLoadedMsg:
		if msg.Token != m.token {
			logging.Debug("discarding stale detail result", "token", msg.Token, "current", m.token)
			return m, nil
		}
		return m.handleDetailLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeResults:
		return m.updateResults(msg)
	case modeDetail:
		return m.updateDetail(msg)
	case modeHoldingDetail:
		return m.updateHoldingDetail(msg)
	case modeFullBiblio, modeMARCView, modeHelp:
		return m.updateScroller(msg)
	case modeSettings:
		return m.updateSettings(msg)
	case modeAbout:
		// Any key returns to the menu.
		m.mode = modeMenu
		return m, nil
	}
	return m, nil
}

// View renders the active screen between the header and status bar.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := renderHeader(m.styles, m.cfg.LibraryName, m.width, m.now)

	var body, status string
	switch m.mode {
	case modeMenu:
		body, status = m.viewMenu()
	case modeSearch:
		body, status = m.viewSearch()
	case modeResults:
		body, status = m.viewResults()
	case modeDetail:
		body, status = m.viewDetail()
	case modeHoldingDetail:
		body, status = m.viewHoldingDetail()
	case modeFullBiblio, modeMARCView, modeHelp:
		body, status = m.viewScroller()
	case modeSettings:
		body, status = m.viewSettings()
	case modeAbout:
		body, status = m.viewAbout()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Height(m.contentHeight()).Render(body),
		renderStatusBar(m.styles, status, m.width),
	)
}

// contentHeight is the space between the 2-line header and the
// status bar.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// applyConfig re-skins the app after a settings change.
func (m *Model) applyConfig() {
	m.theme = GetTheme(m.cfg.Theme)
	m.styles = NewStyles(m.theme)
	m.search = newSearchModel(m.styles)
	m.spinner.Style = m.styles.Text
}

// fetchTimeout derives the per-request context deadline.
func (m *Model) fetchTimeout() time.Duration {
	return time.Duration(m.cfg.RequestTimeout) * time.Second
}

// nextToken invalidates all in-flight fetches and returns the token
// for a new one.
func (m *Model) nextToken() int {
	m.token++
	return m.token
}

// startSearch kicks off a catalog search.
func (m *Model) startSearch(query string, searchType catalog.SearchType, page int) tea.Cmd {
	token := m.nextToken()
	provider := m.provider
	perPage := m.cfg.ItemsPerPage
	timeout := m.fetchTimeout()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := provider.Search(ctx, query, searchType, page, perPage)
		return searchResultsMsg{Token: token, Result: result, Err: err}
	}
}

// startDetail fetches a record and its holdings.
func (m *Model) startDetail(biblioID int) tea.Cmd {
	token := m.nextToken()
	provider := m.provider
	timeout := m.fetchTimeout()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, recordErr := provider.GetRecord(ctx, biblioID)
		holdings, holdingsErr := provider.GetHoldings(ctx, biblioID)

		return detailLoadedMsg{
			Token:       token,
			Record:      record,
			RecordErr:   recordErr,
			Holdings:    holdings,
			HoldingsErr: holdingsErr,
		}
	}
}

// openScroller switches to a scrolling read-only page.
func (m *Model) openScroller(mode viewMode, content string) {
	m.prevMode = m.mode
	m.mode = mode
	m.scroller = viewport.New(m.width, m.contentHeight())
	m.scroller.SetContent(m.styles.Text.Render(content))
	m.scroller.GotoTop()
}
