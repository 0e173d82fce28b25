package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starblitz/internal/core"
)

// BlitzSelection holds the user's choices from the pre-game setup screen.
type BlitzSelection struct {
	Preset string // "", "easy", "normal", "hard", "fixed"
}

// presetOption is one row of the setup menu.
type presetOption struct {
	label  string
	preset string
	desc   string
}

var presetOptions = []presetOption{
	{"Normal", "normal", "The intended ride: 3 lives and a swarm that keeps growing."},
	{"Easy", "easy", "5 lives, a lighter swarm, a softer boss."},
	{"Hard", "hard", "2 lives and a 70 HP boss that shows up sooner."},
	{"Fixed pacing", "fixed", "No ramping. The arena holds its opening tempo forever."},
	{"How to play...", "", ""},
}

// BlitzSetupModel lets users pick a difficulty preset before launching,
// with a how-to-play screen one level down.
type BlitzSetupModel struct {
	cursor    int
	inHelp    bool
	width     int
	height    int
	keyMapper *KeyMapper
	theme     BlitzTheme
	selection BlitzSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewBlitzSetupModel creates a new setup model.
func NewBlitzSetupModel(width, height int) BlitzSetupModel {
	return BlitzSetupModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     GetBlitzTheme(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BlitzSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BlitzSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BlitzSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inHelp {
		return m.handleHelpKey(action)
	}
	return m.handleSelectKey(action)
}

func (m BlitzSetupModel) handleSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == len(presetOptions)-1 {
			m.inHelp = true
			return m, nil
		}
		m.choosing = false
		m.selection = BlitzSelection{Preset: presetOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BlitzSetupModel) handleHelpKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack, MenuActionSelect:
		m.inHelp = false
	}

	return m, nil
}

// View renders the setup screen.
func (m BlitzSetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inHelp {
		return m.viewHelp()
	}
	return m.viewSelect()
}

func (m BlitzSetupModel) viewSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S T A R B L I T Z"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuSubtitle.Render("Pick your difficulty:"), m.width))
	b.WriteString("\n\n")

	for i, opt := range presetOptions {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render(presetOptions[m.cursor].desc), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuControls.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m BlitzSetupModel) viewHelp() string {
	t := m.theme
	lines := []string{
		t.LegendShip.Render("▲") + t.LegendText.Render("  Your ship. Arrows/WASD steer, Space fires along your facing."),
		t.LegendSeeker.Render("◆") + t.LegendText.Render("  Seeker: locks on and accelerates straight at you."),
		t.LegendWander.Render("●") + t.LegendText.Render("  Wanderer: drifts on a whim and takes pot shots."),
		t.LegendSpinner.Render("/") + t.LegendText.Render("  Spinner: circles a point and fires spiral bursts."),
		t.LegendBoss.Render("█") + t.LegendText.Render("  Boss: descends, strafes, and escalates phase by phase."),
		t.LegendText.Render("♥") + t.LegendText.Render("  Lives. Touching anything hostile costs one."),
		"",
		t.LegendText.Render("Kills inside the combo window chain; long streaks raise the"),
		t.LegendText.Render("score multiplier to x2 and x4 until you go quiet too long."),
	}

	// Pad to a common width so the block reads left-aligned when centered
	maxw := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxw {
			maxw = w
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("HOW TO PLAY"), m.width))
	b.WriteString("\n\n")
	for _, line := range lines {
		if pad := maxw - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuControls.Render("Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BlitzSetupModel) Selected() *BlitzSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BlitzSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BlitzSetupModel) WantsBack() bool {
	return m.back
}

// RunBlitzSetup runs the pre-game setup screen. A nil selection means the
// user backed out or quit.
func RunBlitzSetup(cfg core.RuntimeConfig) (*BlitzSelection, core.RuntimeConfig, error) {
	model := NewBlitzSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BlitzSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
