package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
)

type formField int

const (
	fieldAge formField = iota
	fieldSize
)

// FormModel collects the age and size.
type FormModel struct {
	age     textinput.Model
	sizes   []ageconv.Size
	sizeIdx int // -1 until a size is picked
	focus   formField
	errs    map[string]string
}

// NewFormModel creates an empty form with the age field focused.
func NewFormModel() FormModel {
	in := textinput.New()
	in.Placeholder = "e.g. 5 or 2.5"
	in.CharLimit = 6
	in.Width = 12
	in.Prompt = ""
	in.Focus()
	return FormModel{
		age:     in,
		sizes:   ageconv.Sizes(),
		sizeIdx: -1,
		errs:    map[string]string{},
	}
}

// AgeText returns the raw age input.
func (f FormModel) AgeText() string { return f.age.Value() }

// SizeText returns the selected size name, or "" when none is selected.
func (f FormModel) SizeText() string {
	if f.sizeIdx < 0 {
		return ""
	}
	return f.sizes[f.sizeIdx].String()
}

// SetError shows err next to its field. Non-validation errors are shown
// under the form.
func (f *FormModel) SetError(err error) {
	f.errs = map[string]string{}
	if err == nil {
		return
	}
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		f.errs[verr.Field] = verr.Message
		return
	}
	f.errs["form"] = err.Error()
}

// Reset clears inputs and errors.
func (f *FormModel) Reset() tea.Cmd {
	f.age.Reset()
	f.sizeIdx = -1
	f.errs = map[string]string{}
	f.focus = fieldAge
	return f.age.Focus()
}

func (f *FormModel) setFocus(field formField) tea.Cmd {
	f.focus = field
	if field == fieldAge {
		return f.age.Focus()
	}
	f.age.Blur()
	return nil
}

// Update handles keys that edit the form. Submit and quit are handled by
// the parent model.
func (f FormModel) Update(msg tea.Msg, km KeyMap) (FormModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, km.NextField), key.Matches(keyMsg, km.PrevField):
			next := fieldSize
			if f.focus == fieldSize {
				next = fieldAge
			}
			return f, f.setFocus(next)
		}
		if f.focus == fieldSize {
			switch {
			case key.Matches(keyMsg, km.SizeLeft):
				f.moveSize(-1)
			case key.Matches(keyMsg, km.SizeRight):
				f.moveSize(1)
			default:
				if size, err := ageconv.ParseSize(keyMsg.String()); err == nil && len(keyMsg.String()) == 1 {
					f.sizeIdx = int(size) - int(ageconv.Small)
					delete(f.errs, "size")
				}
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.age, cmd = f.age.Update(msg)
	if isKey {
		delete(f.errs, "age")
	}
	return f, cmd
}

func (f *FormModel) moveSize(delta int) {
	if f.sizeIdx < 0 {
		f.sizeIdx = 0
		if delta < 0 {
			f.sizeIdx = len(f.sizes) - 1
		}
	} else {
		f.sizeIdx = (f.sizeIdx + delta + len(f.sizes)) % len(f.sizes)
	}
	delete(f.errs, "size")
}

// View renders the form.
func (f FormModel) View() string {
	var b strings.Builder

	b.WriteString(fieldLabel("Dog's age (years)", f.focus == fieldAge))
	b.WriteString("\n")
	b.WriteString(f.age.View())
	b.WriteString("\n")
	b.WriteString(fieldError(f.errs["age"]))
	b.WriteString("\n")

	b.WriteString(fieldLabel("Dog's size", f.focus == fieldSize))
	b.WriteString("\n")
	options := make([]string, len(f.sizes))
	for i, s := range f.sizes {
		if i == f.sizeIdx {
			options[i] = selectedStyle.Render(s.Label())
		} else {
			options[i] = optionStyle.Render(s.Label())
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, options...))
	b.WriteString("\n")
	b.WriteString(fieldError(f.errs["size"]))

	if msg := f.errs["form"]; msg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(msg))
	}
	return b.String()
}

func fieldLabel(text string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func fieldError(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render(msg)
}
