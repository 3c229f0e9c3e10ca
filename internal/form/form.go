// Package form validates the contact form and fakes its submission.
package form

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/effects"
	"github.com/iburimskiy/portfolio/internal/schedule"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgFixErrors    = "Please fix the errors above"

	ButtonIdle    = "Send Message"
	ButtonSending = "Sending..."
	ButtonSent    = "✓ Sent!"
)

// Status is the border state of a field.
type Status int

const (
	StatusNeutral Status = iota
	StatusValid
	StatusError
)

type Field struct {
	Name      string
	Label     string
	Email     bool
	Multiline bool
	Value     string
	Status    Status
	Error     string
}

// Validate checks the field and sets its status.
func (f *Field) Validate() bool {
	f.Status, f.Error = StatusNeutral, ""
	v := strings.TrimSpace(f.Value)
	if v == "" {
		f.Status, f.Error = StatusError, MsgRequired
		return false
	}
	if f.Email && !emailPattern.MatchString(v) {
		f.Status, f.Error = StatusError, MsgInvalidEmail
		return false
	}
	f.Status = StatusValid
	return true
}

// Clear drops the field's status, as when it gains focus.
func (f *Field) Clear() {
	f.Status, f.Error = StatusNeutral, ""
}

// Form is the contact form. Submitting is asynchronous only in appearance;
// nothing leaves the process.
type Form struct {
	Fields []*Field
	Button string
	Busy   bool
	Sent   bool // success styling on the button

	focus  int
	sched  *schedule.Scheduler
	toasts *effects.Toaster

	// OnSubmit runs when a valid form is accepted.
	OnSubmit func(name, email string)
}

func New(sched *schedule.Scheduler, toasts *effects.Toaster) *Form {
	return &Form{
		Fields: []*Field{
			{Name: "name", Label: "Name"},
			{Name: "email", Label: "Email", Email: true},
			{Name: "subject", Label: "Subject"},
			{Name: "message", Label: "Message", Multiline: true},
		},
		Button: ButtonIdle,
		focus:  -1,
		sched:  sched,
		toasts: toasts,
	}
}

// Field returns the field with the given name or nil.
func (f *Form) Field(name string) *Field {
	for _, fl := range f.Fields {
		if fl.Name == name {
			return fl
		}
	}
	return nil
}

// Set assigns a field value.
func (f *Form) Set(name, value string) error {
	fl := f.Field(name)
	if fl == nil {
		return fmt.Errorf("unknown field %q", name)
	}
	fl.Value = value
	return nil
}

// Focused returns the focused field or nil.
func (f *Form) Focused() *Field {
	if f.focus < 0 || f.focus >= len(f.Fields) {
		return nil
	}
	return f.Fields[f.focus]
}

// Focus moves focus to field i; -1 removes focus. The field losing focus is
// validated and the field gaining it is cleared.
func (f *Form) Focus(i int) {
	if i == f.focus {
		return
	}
	if old := f.Focused(); old != nil {
		old.Validate()
	}
	if i < -1 || i >= len(f.Fields) {
		i = -1
	}
	f.focus = i
	if now := f.Focused(); now != nil {
		now.Clear()
	}
}

// FocusNext cycles focus through the fields.
func (f *Form) FocusNext() {
	f.Focus((f.focus + 1) % len(f.Fields))
}

// Type appends runes to the focused field.
func (f *Form) Type(rs []rune) {
	fl := f.Focused()
	if fl == nil || f.Busy {
		return
	}
	for _, r := range rs {
		if r == '\n' && !fl.Multiline {
			continue
		}
		fl.Value += string(r)
	}
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	fl := f.Focused()
	if fl == nil || f.Busy {
		return
	}
	rs := []rune(fl.Value)
	if len(rs) > 0 {
		fl.Value = string(rs[:len(rs)-1])
	}
}

// Submit validates every field. Invalid forms are blocked with an error
// toast. Valid forms go through the sending, sent and reset steps.
func (f *Form) Submit() bool {
	if f.Busy {
		return false
	}
	valid := true
	for _, fl := range f.Fields {
		if !fl.Validate() {
			valid = false
		}
	}
	if !valid {
		f.toasts.Show(MsgFixErrors, effects.KindError)
		return false
	}

	name := f.Field("name").Value
	email := f.Field("email").Value
	f.Busy = true
	f.Button = ButtonSending
	if f.OnSubmit != nil {
		f.OnSubmit(name, email)
	}

	f.sched.Run(schedule.Sequence{
		{Delay: config.SubmitDelay, Action: func() {
			f.Button = ButtonSent
			f.Sent = true
			f.toasts.Show(ThankYou(name, email), effects.KindSuccess)
			f.reset()
		}},
		{Delay: config.SubmitResetDelay, Action: func() {
			f.Button = ButtonIdle
			f.Busy = false
			f.Sent = false
		}},
	})
	return true
}

func (f *Form) reset() {
	for _, fl := range f.Fields {
		fl.Value = ""
		fl.Clear()
	}
	f.focus = -1
}

// ThankYou is the success message for a submission.
func ThankYou(name, email string) string {
	return fmt.Sprintf("Thank you, %s! Your message has been received. I'll get back to you at %s soon.", name, email)
}
