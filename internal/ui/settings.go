package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"opacterm/internal/config"
	"opacterm/internal/logging"
)

// Settings screen fields, in navigation order.
const (
	fieldServerURL = iota
	fieldLibraryName
	fieldItemsPerPage
	fieldTimeout
	fieldTheme
	fieldCallNumber
	fieldCount
)

var callNumberModes = []string{"both", "lcc", "dewey"}

type settingsModel struct {
	cursor int

	serverURL    textinput.Model
	libraryName  textinput.Model
	itemsPerPage textinput.Model
	timeout      textinput.Model

	themeIndex      int
	callNumberIndex int

	statusMsg string
	isError   bool
}

func newSettingsModel(cfg *config.Config, st Styles) settingsModel {
	newInput := func(value, placeholder string) textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.SetValue(value)
		in.Placeholder = placeholder
		in.TextStyle = st.Text
		in.PlaceholderStyle = st.Dim
		return in
	}

	s := settingsModel{
		serverURL:    newInput(cfg.BaseURL, "https://your-koha-server.org"),
		libraryName:  newInput(cfg.LibraryName, "Your Library Name"),
		itemsPerPage: newInput(strconv.Itoa(cfg.ItemsPerPage), "10"),
		timeout:      newInput(strconv.Itoa(cfg.RequestTimeout), "30"),
	}

	for i, name := range ThemeNames {
		if name == strings.ToLower(cfg.Theme) {
			s.themeIndex = i
		}
	}
	for i, mode := range callNumberModes {
		if mode == cfg.CallNumberDisplay {
			s.callNumberIndex = i
		}
	}

	s.serverURL.Focus()
	return s
}

// focusedInput returns the text input under the cursor, or nil when a
// selector field is focused.
func (s *settingsModel) focusedInput() *textinput.Model {
	switch s.cursor {
	case fieldServerURL:
		return &s.serverURL
	case fieldLibraryName:
		return &s.libraryName
	case fieldItemsPerPage:
		return &s.itemsPerPage
	case fieldTimeout:
		return &s.timeout
	}
	return nil
}

func (s *settingsModel) moveFocus(delta int) {
	if in := s.focusedInput(); in != nil {
		in.Blur()
	}
	s.cursor = (s.cursor + delta + fieldCount) % fieldCount
	if in := s.focusedInput(); in != nil {
		in.Focus()
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.settings

	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "tab", "down":
		s.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		s.moveFocus(-1)
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch s.cursor {
		case fieldTheme:
			s.themeIndex = (s.themeIndex + delta + len(ThemeNames)) % len(ThemeNames)
			return m, nil
		case fieldCallNumber:
			s.callNumberIndex = (s.callNumberIndex + delta + len(callNumberModes)) % len(callNumberModes)
			return m, nil
		}
	case "ctrl+s", "enter":
		return m.saveSettings()
	}

	if in := s.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) saveSettings() (tea.Model, tea.Cmd) {
	s := &m.settings

	fail := func(msg string) (tea.Model, tea.Cmd) {
		s.statusMsg = msg
		s.isError = true
		return m, nil
	}

	serverURL := strings.TrimSpace(s.serverURL.Value())
	if err := ValidateURL(serverURL); err != nil {
		return fail("Error: " + err.Error())
	}

	itemsPerPage, err := strconv.Atoi(strings.TrimSpace(s.itemsPerPage.Value()))
	if err != nil {
		return fail("Error: Items per page must be a number")
	}
	if err := ValidateItemsPerPage(itemsPerPage); err != nil {
		return fail("Error: " + err.Error())
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(s.timeout.Value()))
	if err != nil {
		return fail("Error: Timeout must be a number")
	}
	if err := ValidateTimeout(timeout); err != nil {
		return fail("Error: " + err.Error())
	}

	libraryName := strings.TrimSpace(s.libraryName.Value())
	if libraryName == "" {
		libraryName = "PUBLIC LIBRARY"
	}

	m.cfg.BaseURL = serverURL
	m.cfg.LibraryName = libraryName
	m.cfg.ItemsPerPage = itemsPerPage
	m.cfg.RequestTimeout = timeout
	m.cfg.Theme = ThemeNames[s.themeIndex]
	m.cfg.CallNumberDisplay = callNumberModes[s.callNumberIndex]

	if err := m.cfg.Save(); err != nil {
		logging.Error("failed to save config", "err", err)
		return fail("Error: could not save settings")
	}

	m.applyConfig()
	m.settings.statusMsg = "Settings saved!"
	m.settings.isError = false
	return m, nil
}

func (m Model) viewSettings() (string, string) {
	s := m.settings
	var b strings.Builder

	b.WriteString(m.styles.BoxTitle.Render("── SETTINGS ──"))
	b.WriteString("\n\n")

	field := func(index int, label, rendered string) {
		marker := "  "
		if s.cursor == index {
			marker = m.styles.MenuNumber.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker,
			m.styles.Label.Render(fmt.Sprintf("%-16s", label+":")), rendered))
	}

	field(fieldServerURL, "Server URL", s.serverURL.View())
	field(fieldLibraryName, "Library Name", s.libraryName.View())
	field(fieldItemsPerPage, "Items Per Page", s.itemsPerPage.View())
	field(fieldTimeout, "Timeout (sec)", s.timeout.View())

	var themeParts []string
	for i, name := range ThemeNames {
		label := GetTheme(name).Name
		if i == s.themeIndex {
			themeParts = append(themeParts, m.styles.Selected.Render("("+label+")"))
		} else {
			themeParts = append(themeParts, m.styles.Dim.Render(" "+label+" "))
		}
	}
	field(fieldTheme, "Theme", strings.Join(themeParts, " "))

	var cnParts []string
	for i, mode := range callNumberModes {
		if i == s.callNumberIndex {
			cnParts = append(cnParts, m.styles.Selected.Render("("+mode+")"))
		} else {
			cnParts = append(cnParts, m.styles.Dim.Render(" "+mode+" "))
		}
	}
	field(fieldCallNumber, "Call Numbers", strings.Join(cnParts, " "))

	if s.statusMsg != "" {
		b.WriteString("\n")
		if s.isError {
			b.WriteString(m.styles.Error.Render(s.statusMsg))
		} else {
			b.WriteString(m.styles.Available.Render(s.statusMsg))
		}
		b.WriteString("\n")
	}

	return b.String(), "Ctrl+S=Save, Tab=Next Field, Left/Right=Change Option, Esc=Cancel"
}
