package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/submission"
)

const (
	cardWidth     = 60
	toastDuration = 3 * time.Second
)

// Model is the root bubbletea model.
type Model struct {
	header  HeaderModel
	form    FormModel
	spinner spinner.Model
	results ResultsModel
	keymap  KeyMap

	ctrl *submission.Controller
	ctx  context.Context
	ref  *programRef

	// phase mirrors the controller state as seen by the UI; it only
	// advances when the matching message has been handled.
	phase      submission.State
	generation uint64

	toast    string
	toastSeq int

	width  int
	height int
}

// NewModel creates the model around ctrl.
func NewModel(ctx context.Context, ctrl *submission.Controller, version string) Model {
	return Model{
		header: NewHeaderModel(version),
		form:   NewFormModel(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
		keymap: DefaultKeyMap(),
		ctrl:   ctrl,
		ctx:    ctx,
		ref:    &programRef{},
		phase:  submission.Form,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if m.phase != submission.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FactMsg:
		if msg.Generation != m.generation || m.phase != submission.Loading {
			return m, nil // superseded by a reset or a newer submission
		}
		if msg.View.State != submission.Results {
			return m, nil
		}
		event := submission.FactResolved
		if msg.View.Err != nil {
			event = submission.FactFailed
		}
		m.phase = submission.Next(m.phase, event)
		m.results = NewResultsModel(msg.View)
		return m, countUpCmd(m.generation)

	case countUpMsg:
		if msg.Generation != m.generation || m.phase != submission.Results || m.results.Done() {
			return m, nil
		}
		m.results.Step()
		return m, countUpCmd(m.generation)

	case FactUnavailableMsg:
		m.toastSeq++
		m.toast = "Couldn't fetch a dog fact this time."
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	if m.phase == submission.Form {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg, m.keymap)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		// "q" is a valid keystroke only outside the age field.
		if msg.String() != "q" || m.phase != submission.Form || m.form.focus != fieldAge {
			m.ctrl.Reset()
			return m, tea.Quit
		}
	}

	switch m.phase {
	case submission.Form:
		if key.Matches(msg, m.keymap.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg, m.keymap)
		return m, cmd

	case submission.Loading, submission.Results:
		if key.Matches(msg, m.keymap.Reset) || (m.phase == submission.Results && key.Matches(msg, m.keymap.Submit)) {
			return m.reset()
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	age, size, err := ageconv.ParseInput(m.form.AgeText(), m.form.SizeText())
	if err != nil {
		m.form.SetError(err)
		return m, nil
	}
	views, err := m.ctrl.Start(m.ctx, age, size)
	if err != nil {
		m.form.SetError(err)
		return m, nil
	}
	m.form.SetError(nil)
	m.generation = m.ctrl.Snapshot().Generation
	m.phase = submission.Next(m.phase, submission.Submit)
	return m, tea.Batch(m.spinner.Tick, waitForViewCmd(views, m.generation))
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.ctrl.Reset()
	m.generation = m.ctrl.Snapshot().Generation
	m.phase = submission.Next(m.phase, submission.Reset)
	m.results = ResultsModel{}
	cmd := m.form.Reset()
	return m, cmd
}

// View renders the screen.
func (m Model) View() string {
	var body string
	switch m.phase {
	case submission.Form:
		body = m.form.View()
	case submission.Loading:
		body = m.spinner.View() + " Calculating and fetching a dog fact..."
	case submission.Results:
		body = m.results.View()
	}

	parts := []string{m.header.View(), cardStyle.Render(body)}
	if m.toast != "" {
		parts = append(parts, toastStyle.Render("! "+m.toast))
	}
	parts = append(parts, m.helpView())
	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
	}
	return screen
}

func (m Model) helpView() string {
	var bindings []key.Binding
	switch m.phase {
	case submission.Form:
		bindings = []key.Binding{m.keymap.Submit, m.keymap.NextField, m.keymap.SizeLeft, m.keymap.SizeRight, m.keymap.Quit}
	case submission.Loading:
		bindings = []key.Binding{m.keymap.Reset, m.keymap.Quit}
	case submission.Results:
		bindings = []key.Binding{m.keymap.Reset, m.keymap.Quit}
	}
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(items, helpDescStyle.Render(" • "))
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, provider fact.Provider, version string, opts ...submission.Option) int {
	initTUIStyles()

	ref := &programRef{}
	opts = append(opts, submission.WithNotifier(tuiNotifier{ref: ref}))
	ctrl := submission.New(provider, opts...)

	model := NewModel(ctx, ctrl, version)
	model.ref = ref

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	ref.SetProgram(p)

	if _, err := p.Run(); err != nil {
		ctrl.Reset()
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
