package menu

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jwebster45206/doom-launchers/internal/config"
	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// selectModel is the bubbletea model behind TUISelector. Typing a number and
// pressing enter picks it; with the field empty, enter picks the highlighted
// row, which the arrow keys move.
type selectModel struct {
	options  []string
	cursor   int
	input    textinput.Model
	err      error
	choice   int // 1-based; 0 until chosen
	quitting bool
}

func newSelectModel(options []string) selectModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", len(options))
	ti.Prompt = "> "
	ti.CharLimit = 4
	ti.Focus()

	return selectModel{options: options, input: ti}
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.choice = m.cursor + 1
				return m, tea.Quit
			}
			choice, err := ParseSelection(value, len(m.options))
			if err != nil {
				m.err = err
				m.input.Reset()
				return m, nil
			}
			m.choice = choice
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.choice > 0 || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("The following campaigns were found:") + "\n")
	for i, option := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + Prompt + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// TUISelector runs the interactive campaign picker.
type TUISelector struct {
	in  io.Reader
	out io.Writer
}

var _ Selector = (*TUISelector)(nil)

func NewTUISelector(in io.Reader, out io.Writer) *TUISelector {
	return &TUISelector{in: in, out: out}
}

func (s *TUISelector) Select(ctx context.Context, campaigns []*campaign.Campaign) ([]*campaign.Campaign, error) {
	p := tea.NewProgram(newSelectModel(Options(campaigns)),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("campaign selection failed: %w", err)
	}
	m, ok := final.(selectModel)
	if !ok || m.choice == 0 {
		return nil, ErrNoSelection
	}
	return Chosen(campaigns, m.choice), nil
}

// NewSelector picks the TUI for an interactive terminal and the plain prompt
// otherwise, unless mode forces one.
func NewSelector(mode string, in *os.File, out io.Writer) Selector {
	switch mode {
	case config.UITUI:
		return NewTUISelector(in, out)
	case config.UIPlain:
		return NewPlainSelector(in, out)
	}
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTUISelector(in, out)
	}
	return NewPlainSelector(in, out)
}
