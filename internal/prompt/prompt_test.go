package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := &Prompter{In: strings.NewReader(tt.input), Out: &out}
			got, err := p.Confirm("Proceed?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "? Proceed? (y/N) ") {
				t.Errorf("question not printed: %q", out.String())
			}
		})
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader(""), Out: &out, AssumeYes: true}
	ok, err := p.Confirm("Proceed?")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v; want true, nil", ok, err)
	}
	if out.Len() != 0 {
		t.Errorf("AssumeYes should not print, got %q", out.String())
	}
}

func TestSelect_NumberedMenu(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("2\n"), Out: &out}
	idx, err := p.Select("Select a target:", []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("Select() = %d, want 1", idx)
	}
	if !strings.Contains(out.String(), "  2) beta\n") {
		t.Errorf("menu not printed: %q", out.String())
	}
}

func TestSelect_ThenConfirmShareInput(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("1\ny\n"), Out: &out}
	idx, err := p.Select("Pick:", []string{"a", "b"})
	if err != nil || idx != 0 {
		t.Fatalf("Select() = %d, %v", idx, err)
	}
	ok, err := p.Confirm("Sure?")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}
}

func TestSelect_Invalid(t *testing.T) {
	for _, input := range []string{"0\n", "4\n", "abc\n", ""} {
		var out bytes.Buffer
		p := &Prompter{In: strings.NewReader(input), Out: &out}
		if _, err := p.Select("Pick:", []string{"a", "b", "c"}); err == nil {
			t.Errorf("Select(%q) expected error", input)
		}
	}
}

func TestSelect_Empty(t *testing.T) {
	p := &Prompter{In: strings.NewReader("1\n"), Out: &bytes.Buffer{}}
	if _, err := p.Select("Pick:", nil); err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestSelectFromList_LastLineWithoutNewline(t *testing.T) {
	idx, err := selectFromList(bufio.NewReader(strings.NewReader("3")), &bytes.Buffer{}, "Pick:", []string{"a", "b", "c"})
	if err != nil || idx != 2 {
		t.Fatalf("selectFromList() = %d, %v; want 2, nil", idx, err)
	}
}

func keys(m tea.Model, msgs ...tea.KeyMsg) selectModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(selectModel)
}

func TestSelectModel_Navigation(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	m := keys(newSelectModel("Pick:", []string{"a", "b", "c"}), down, j, down, up)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m = keys(m, up, up, up)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if m.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", m.cursor)
	}
}

func TestSelectModel_Enter(t *testing.T) {
	m := newSelectModel("Pick:", []string{"a", "b"})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(selectModel)
	if !got.chosen || got.cursor != 1 {
		t.Errorf("model = %+v, want chosen at 1", got)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if got.View() != "" {
		t.Errorf("View() after choice = %q, want empty", got.View())
	}
}

func TestSelectModel_Cancel(t *testing.T) {
	m := keys(newSelectModel("Pick:", []string{"a"}), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.cancelled {
		t.Error("esc should cancel")
	}
}

func TestSelectModel_View(t *testing.T) {
	view := newSelectModel("Pick a target:", []string{"alpha", "beta"}).View()
	for _, want := range []string{"Pick a target:", "alpha", "beta"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
