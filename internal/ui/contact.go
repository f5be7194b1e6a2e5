package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/contact"
)

const contactFields = 3

// ContactForm is the "Send a message" card. It only validates and drafts;
// submitting produces a contactDraftMsg for the app to hand off.
type ContactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	active  bool
	errs    map[contact.Field]string
	width   int
}

var _ View = (*ContactForm)(nil)

// NewContactForm creates an inactive form.
func NewContactForm() *ContactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = ""
	email := textinput.New()
	email.Placeholder = "Your email"
	email.Prompt = ""
	msg := textarea.New()
	msg.Placeholder = "Your message"
	msg.ShowLineNumbers = false
	msg.SetHeight(5)
	f := &ContactForm{name: name, email: email, message: msg, errs: map[contact.Field]string{}}
	f.SetWidth(40)
	return f
}

// SetWidth sizes the inputs to the available columns.
func (f *ContactForm) SetWidth(w int) {
	f.width = max(w, 20)
	f.name.Width = f.width - 2
	f.email.Width = f.width - 2
	f.message.SetWidth(f.width)
}

// Active reports whether the form currently owns keyboard input.
func (f *ContactForm) Active() bool {
	return f.active
}

// Activate gives the form keyboard focus, starting at the first field.
func (f *ContactForm) Activate() tea.Cmd {
	f.active = true
	f.focus = 0
	return f.applyFocus()
}

// Deactivate releases keyboard focus; typed values are kept.
func (f *ContactForm) Deactivate() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// Value returns what has been typed so far.
func (f *ContactForm) Value() contact.Message {
	return contact.Message{Name: f.name.Value(), Email: f.email.Value(), Message: f.message.Value()}
}

// Errors returns the validation messages of the last submit.
func (f *ContactForm) Errors() map[contact.Field]string {
	return f.errs
}

// Reset clears all fields and errors.
func (f *ContactForm) Reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.errs = map[contact.Field]string{}
}

func (f *ContactForm) applyFocus() tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focus {
	case 0:
		return f.name.Focus()
	case 1:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

// Submit validates the form. On success it returns a draft command and
// clears the form; otherwise the errors are kept for rendering.
func (f *ContactForm) Submit() tea.Cmd {
	m := f.Value()
	if err := m.Validate(); err != nil {
		f.errs = contact.FieldErrors(err)
		return nil
	}
	draft := m.Trimmed()
	f.Reset()
	f.Deactivate()
	return func() tea.Msg { return contactDraftMsg{Message: draft} }
}

func (f *ContactForm) Init() tea.Cmd {
	return nil
}

func (f *ContactForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			f.Deactivate()
			return f, func() tea.Msg { return contactLeftMsg{} }
		case "tab":
			f.focus = (f.focus + 1) % contactFields
			return f, f.applyFocus()
		case "shift+tab":
			f.focus = (f.focus + contactFields - 1) % contactFields
			return f, f.applyFocus()
		case "ctrl+s":
			return f, f.Submit()
		case "enter":
			if f.focus < 2 {
				f.focus++
				return f, f.applyFocus()
			}
		}
	}
	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.name, cmd = f.name.Update(msg)
	case 1:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd
}

func (f *ContactForm) View() string {
	var b strings.Builder
	b.WriteString(Styles.CardTitle.Render("Send a message"))
	b.WriteString("\n")
	field := func(label string, id contact.Field, idx int, input string) {
		style := Styles.Muted
		if f.active && f.focus == idx {
			style = Styles.ButtonFocus
		}
		b.WriteString(style.Render(label))
		if e, ok := f.errs[id]; ok {
			b.WriteString(" " + Styles.Error.Render(e))
		}
		b.WriteString("\n")
		b.WriteString(input)
		b.WriteString("\n")
	}
	field("Name", contact.FieldName, 0, f.name.View())
	field("Email", contact.FieldEmail, 1, f.email.View())
	field("Message", contact.FieldMessage, 2, f.message.View())
	if f.active {
		b.WriteString(Styles.Hint.Render("tab next field · ctrl+s send · esc leave form"))
	} else {
		b.WriteString(Styles.Hint.Render("c: write a message"))
	}
	return b.String()
}
