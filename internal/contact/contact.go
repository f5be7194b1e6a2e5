// Package contact validates contact-form input and drafts it as a mailto URI.
// Nothing is sent anywhere; the draft is handed to the visitor's mail client.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Sentinel validation errors.
var (
	ErrRequired     = errors.New("required")
	ErrInvalidEmail = errors.New("not a valid email address")
)

// FieldError ties a validation error to a form field.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Message is what the visitor typed into the form.
type Message struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email,maildomain"`
	Message string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The domain of a reachable address has at least one dot.
	if err := v.RegisterValidation("maildomain", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		at := strings.LastIndex(s, "@")
		return at > 0 && strings.Contains(s[at+1:], ".")
	}); err != nil {
		panic(err)
	}
	return v
}

var fieldByName = map[string]Field{
	"Name":    FieldName,
	"Email":   FieldEmail,
	"Message": FieldMessage,
}

// Trimmed returns m with surrounding whitespace removed from every field.
func (m Message) Trimmed() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks that all fields are present and the email parses.
// The returned error joins one *FieldError per failing field.
func (m Message) Validate() error {
	m = m.Trimmed()
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		cause := ErrInvalidEmail
		if fe.Tag() == "required" {
			cause = ErrRequired
		}
		errs = append(errs, &FieldError{Field: fieldByName[fe.StructField()], Err: cause})
	}
	return errors.Join(errs...)
}

// FieldErrors flattens err from Validate into a field → message map.
func FieldErrors(err error) map[Field]string {
	out := make(map[Field]string)
	if err == nil {
		return out
	}
	var joined interface{ Unwrap() []error }
	list := []error{err}
	if errors.As(err, &joined) {
		list = joined.Unwrap()
	}
	for _, e := range list {
		var fe *FieldError
		if errors.As(e, &fe) {
			out[fe.Field] = fe.Err.Error()
		}
	}
	return out
}

// MailtoURI drafts m as a mailto: link addressed to to.
func (m Message) MailtoURI(to string) string {
	m = m.Trimmed()
	q := url.Values{}
	q.Set("subject", "Portfolio contact from "+m.Name)
	q.Set("body", m.Message+"\n\n"+m.Name+" <"+m.Email+">")
	u := url.URL{Scheme: "mailto", Opaque: to, RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20")}
	return u.String()
}
