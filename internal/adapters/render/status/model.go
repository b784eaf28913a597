package status

import (
	"errors"
	"io"

	"github.com/bnema/ignite-timer/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type drawMsg struct{}

// frameModel draws a single frame and quits.
type frameModel struct {
	draw  func() string
	frame string
}

func (m frameModel) Init() tea.Cmd {
	return func() tea.Msg {
		return drawMsg{}
	}
}

func (m frameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); ok {
		m.frame = m.draw()
		return m, tea.Quit
	}

	return m, nil
}

func (m frameModel) View() string {
	return m.frame
}

// Headless runs draw inside a bubbletea program with no terminal attached
// and returns the frame it produced.
func Headless(draw func() string) (string, error) {
	p := tea.NewProgram(
		frameModel{draw: draw},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(frameModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.frame, nil
}

func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	styles := NewStyles()
	return Headless(func() string {
		return View(snapshot, opts, styles)
	})
}
