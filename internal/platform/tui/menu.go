package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-shift/internal/core"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
)

// menuField is a focusable row of the customization form.
type menuField int

const (
	fieldShape menuField = iota
	fieldColor
	fieldSprite
	fieldStart
	fieldCount
)

// menuEvent is what the menu asks its parent to do.
type menuEvent int

const (
	menuNone menuEvent = iota
	menuStart
	menuScores
	menuQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// MenuModel is the pre-game customization form.
type MenuModel struct {
	keys   KeyMap
	focus  menuField
	shape  laneshift.Shape
	color  textinput.Model
	sprite textinput.Model
	err    error
	width  int
}

// NewMenuModel creates the form prefilled with look.
func NewMenuModel(keys KeyMap, look laneshift.Customization, spritePath string) MenuModel {
	color := textinput.New()
	color.Prompt = ""
	color.Placeholder = "#4caf50"
	color.CharLimit = 7
	color.Width = 8
	color.SetValue(string(look.Color))

	sprite := textinput.New()
	sprite.Prompt = ""
	sprite.Placeholder = "path to a text-art file (optional)"
	sprite.CharLimit = 256
	sprite.Width = 36
	sprite.SetValue(spritePath)

	return MenuModel{
		keys:   keys,
		focus:  fieldStart,
		shape:  look.Shape,
		color:  color,
		sprite: sprite,
	}
}

// editing reports whether a text input has focus.
func (m MenuModel) editing() bool {
	return m.focus == fieldColor || m.focus == fieldSprite
}

// setFocus moves focus to f, focusing or blurring the text inputs.
func (m *MenuModel) setFocus(f menuField) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	m.color.Blur()
	m.sprite.Blur()
	switch m.focus {
	case fieldColor:
		return m.color.Focus()
	case fieldSprite:
		return m.sprite.Focus()
	}
	return nil
}

// Update handles a key press.
func (m MenuModel) Update(msg tea.KeyMsg) (MenuModel, menuEvent, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, menuQuit, nil
	case !m.editing() && key.Matches(msg, m.keys.Quit):
		return m, menuQuit, nil
	case key.Matches(msg, m.keys.Scores):
		return m, menuScores, nil
	case key.Matches(msg, m.keys.Start):
		return m, menuStart, nil
	case msg.Type == tea.KeyUp:
		return m, menuNone, m.setFocus(m.focus - 1)
	case msg.Type == tea.KeyDown:
		return m, menuNone, m.setFocus(m.focus + 1)
	case msg.Type == tea.KeyEsc && m.editing():
		return m, menuNone, m.setFocus(fieldStart)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldShape:
		switch {
		case key.Matches(msg, m.keys.Right), msg.String() == " ":
			m.shape = m.shape.Next()
		case key.Matches(msg, m.keys.Left):
			for range len(laneshift.Shapes) - 1 {
				m.shape = m.shape.Next()
			}
		}
	case fieldColor:
		m.color, cmd = m.color.Update(msg)
	case fieldSprite:
		m.sprite, cmd = m.sprite.Update(msg)
	}
	return m, menuNone, cmd
}

// Customization returns the look entered in the form. The sprite is
// loaded from the entered path when one is set.
func (m MenuModel) Customization() (laneshift.Customization, error) {
	c := laneshift.Customization{
		Shape: m.shape,
		Color: core.Color(strings.TrimSpace(m.color.Value())),
	}
	if path := strings.TrimSpace(m.sprite.Value()); path != "" {
		sprite, err := laneshift.LoadSprite(path)
		if err != nil {
			return c, err
		}
		c.Sprite = sprite
	}
	return c, nil
}

// SpritePath returns the entered sprite path.
func (m MenuModel) SpritePath() string {
	return strings.TrimSpace(m.sprite.Value())
}

// View renders the form with the last result and best score.
func (m MenuModel) View(last *laneshift.Result, best int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L A N E   S H I F T"), m.width))
	b.WriteString("\n\n")

	if last != nil {
		line := fmt.Sprintf("Last score: %d", last.Score)
		if last.NewBest {
			line += "  NEW BEST!"
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuBestStyle.Render(fmt.Sprintf("Best: %d", best)), m.width))
	b.WriteString("\n\n")

	rows := []struct {
		field menuField
		label string
		value string
	}{
		{fieldShape, "Shape ", fmt.Sprintf("< %s >", m.shape)},
		{fieldColor, "Color ", m.color.View()},
		{fieldSprite, "Sprite", m.sprite.View()},
		{fieldStart, "", "[ Start ]"},
	}
	for _, row := range rows {
		cursor := "  "
		label := row.label
		if row.field == m.focus {
			cursor = "> "
			label = menuActiveStyle.Render(label)
		}
		if row.field == fieldStart && row.field == m.focus {
			row.value = menuActiveStyle.Render(row.value)
		}
		b.WriteString(fmt.Sprintf("    %s%s  %s\n", cursor, label, row.value))
	}

	if m.err != nil {
		b.WriteString("\n    ")
		b.WriteString(menuErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Field  |  Left/Right: Shape  |  Enter: Start  |  Tab: Scores  |  Ctrl+C: Quit"
	b.WriteString(menuDimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
