package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/modviz/internal/scene"
)

func newTestModel() (Model, *scene.Scene) {
	s := scene.New(scene.Options{
		Params: scene.Params{Operand: 7, Modulus: 3, Generator: 1},
		Ticks:  4,
	})
	return NewModel(s, 60, ""), s
}

func keys(m Model, ks ...string) Model {
	for _, k := range ks {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestEditField(t *testing.T) {
	m, s := newTestModel()

	m = keys(m, "1", "2", "enter")
	if s.Params().Operand != 12 {
		t.Errorf("expected operand 12, got %d", s.Params().Operand)
	}

	m = keys(m, "tab", "5", "tab")
	if s.Params().Modulus != 5 {
		t.Errorf("expected modulus 5, got %d", s.Params().Modulus)
	}
	if m.focus != 2 {
		t.Errorf("expected focus on generator, got %d", m.focus)
	}
}

func TestRejectedEditKeepsValue(t *testing.T) {
	m, s := newTestModel()

	m = keys(m, "tab", "0", "enter")
	if s.Params().Modulus != 3 {
		t.Errorf("expected modulus to stay 3, got %d", s.Params().Modulus)
	}
	if !strings.Contains(m.View(), "modulus must be at least 1") {
		t.Error("expected validation message in view")
	}
}

func TestGenerateAndTick(t *testing.T) {
	m, s := newTestModel()

	m = keys(m, "g")
	if !s.Animation().Active {
		t.Fatal("expected animation running after generate")
	}

	for i := 0; i < 4; i++ {
		next, cmd := m.Update(tickMsg{})
		m = next.(Model)
		if cmd == nil {
			t.Fatal("expected tick to reschedule")
		}
	}
	if s.CurrentProgress() != 1.0 {
		t.Errorf("expected progress 1.0, got %f", s.CurrentProgress())
	}
	if !strings.Contains(m.View(), "7 mod 3 = 1") {
		t.Error("expected summary in view")
	}
}

func TestToggleMode(t *testing.T) {
	m, s := newTestModel()

	m = keys(m, "m")
	if s.Mode() != scene.ModeCycle {
		t.Fatalf("expected cycle mode, got %v", s.Mode())
	}
	m = keys(m, "g")
	res, ok := s.Result()
	if !ok || res.Mode != scene.ModeCycle {
		t.Errorf("expected cycle result, got %+v", res)
	}
	keys(m, "m")
	if s.Mode() != scene.ModeReduction {
		t.Errorf("expected reduction mode, got %v", s.Mode())
	}
}

func TestGeneratePendingEdit(t *testing.T) {
	m, s := newTestModel()

	keys(m, "9", "g")
	res, _ := s.Result()
	if res.Reduction.Operand != 9 || res.Reduction.Remainder != 0 {
		t.Errorf("expected 9 mod 3 = 0, got %v", res.Reduction)
	}
}

func TestBackspace(t *testing.T) {
	m, s := newTestModel()

	keys(m, "tab", "backspace", "4", "enter")
	if s.Params().Modulus != 4 {
		t.Errorf("expected modulus 4, got %d", s.Params().Modulus)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestThemeCycle(t *testing.T) {
	m, _ := newTestModel()
	m = keys(m, "t")
	if m.theme != 1 {
		t.Errorf("expected theme 1, got %d", m.theme)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("expected fallback theme")
	}
}
