package viz

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/scene"
)

const (
	canvasWidth  = 48
	canvasHeight = 24
	stripMax     = 24
)

var fieldNames = []string{scene.FieldOperand, scene.FieldModulus, scene.FieldGenerator}

type tickMsg time.Time

// Model is the Bubble Tea model for the terminal front end.
type Model struct {
	scene  *scene.Scene
	fps    int
	canvas *Canvas

	focus   int
	editBuf string
	editing bool

	theme  int
	styles styles
	frame  int
}

// NewModel wraps s. fps sets how often AdvanceFrame is called.
func NewModel(s *scene.Scene, fps int, theme string) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		scene:  s,
		fps:    fps,
		canvas: NewCanvas(canvasWidth, canvasHeight),
	}
	for i, t := range Themes {
		if t.Name == theme {
			m.theme = i
		}
	}
	m.styles = newStyles(Themes[m.theme])
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(s *scene.Scene, fps int, theme string) error {
	p := tea.NewProgram(NewModel(s, fps, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.scene.AdvanceFrame()
		m.frame++
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "down", "j":
		m.commit()
		m.focus = (m.focus + 1) % len(fieldNames)
	case "shift+tab", "up", "k":
		m.commit()
		m.focus = (m.focus + len(fieldNames) - 1) % len(fieldNames)
	case "enter":
		m.commit()
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if !m.editing {
			m.editing, m.editBuf = true, m.fieldValue(m.focus)
		}
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "g", " ":
		m.commit()
		m.scene.OnGenerate()
	case "m":
		if m.scene.Mode() == scene.ModeReduction {
			m.scene.SetMode(scene.ModeCycle)
		} else {
			m.scene.SetMode(scene.ModeReduction)
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if !m.editing {
				m.editing, m.editBuf = true, ""
			}
			m.editBuf += key
		}
	}
	return m, nil
}

// commit hands a pending edit to the scene, which keeps its old value and
// records a message if the text is rejected.
func (m *Model) commit() {
	if !m.editing {
		return
	}
	m.scene.SetField(fieldNames[m.focus], m.editBuf)
	m.editing, m.editBuf = false, ""
}

func (m Model) fieldValue(i int) string {
	p := m.scene.Params()
	switch fieldNames[i] {
	case scene.FieldOperand:
		return strconv.Itoa(p.Operand)
	case scene.FieldModulus:
		return strconv.Itoa(p.Modulus)
	default:
		return strconv.Itoa(p.Generator)
	}
}

func (m Model) View() string {
	snap := m.scene.Snapshot()
	st := m.styles

	var side strings.Builder
	side.WriteString(st.title.Render("modviz") + "\n\n")
	for i, name := range fieldNames {
		val := m.fieldValue(i)
		if i == m.focus && m.editing {
			val = m.editBuf + "▏"
		}
		line := fmt.Sprintf("%-10s %s", name, val)
		if i == m.focus {
			side.WriteString(st.focused.Render("> "+line) + "\n")
		} else {
			side.WriteString(st.label.Render("  "+line) + "\n")
		}
	}
	side.WriteString("\n" + st.label.Render("mode  ") + st.value.Render(snap.Mode.String()) + "\n\n")
	side.WriteString(st.value.Render(snap.Summary()) + "\n")
	side.WriteString(ProgressBar(snap.Progress, 20, st.highlight) + "\n")
	if snap.Message != "" {
		side.WriteString("\n" + st.err.Render(snap.Message) + "\n")
	}
	side.WriteString("\n" + st.muted.Render("tab field · g generate · m mode\nt theme · q quit"))

	m.render(snap)
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.canvas.Render(m.canvas.String()),
		Separator(canvasWidth, st.label),
		ResidueStrip(labels(snap.Points[:snap.VisiblePoints]), snap.IsHighlighted, st.value, st.highlight, stripMax),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.panel.Render(side.String()),
		st.panel.Render(body),
	)
}

// render draws the snapshot onto the Braille canvas.
func (m Model) render(snap scene.Snapshot) {
	c := m.canvas
	c.Clear()
	if !snap.HasResult || len(snap.Rings) == 0 {
		return
	}

	outer := snap.Rings[len(snap.Rings)-1].Radius + modarith.CircleSize/2
	proj := c.Fit(outer)
	cx, cy := proj.Point(0, 0)

	for _, ring := range snap.Rings {
		if ring.Visible {
			c.DrawCircle(cx, cy, proj.Length(ring.Radius))
		}
	}
	for _, p := range snap.Points[:snap.VisiblePoints] {
		x, y := proj.Point(p.X, p.Y)
		if snap.IsHighlighted(p.Label) {
			c.FillCircle(x, y, 2)
		} else {
			c.DrawCircle(x, y, 1)
		}
	}
	for _, a := range snap.Arrows {
		x0, y0 := proj.Point(a.Start.X, a.Start.Y)
		x1, y1 := proj.Point(a.End.X, a.End.Y)
		c.DrawArrow(x0, y0, x1, y1)
	}
}

func labels(points []modarith.Point) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}
