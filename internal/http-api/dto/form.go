package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the FieldErrors key for problems not tied to one input.
const NonFieldErrors = "__all__"

const (
	msgRequired     = "This field is required."
	msgWholeNumber  = "Enter a whole number."
	msgNumber       = "Enter a number."
	msgDateTime     = "Enter a valid date/time."
	msgInvalidValue = "Enter a valid value."
)

// MsgInvalidChoice is reported for a reference to a record that does not exist.
const MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge copies other into e, keeping messages already present.
func (e FieldErrors) Merge(other FieldErrors) FieldErrors {
	for k, v := range other {
		e.Add(k, v)
	}
	return e
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Bind trims every submitted value and binds the request form into form,
// returning validator failures keyed by form field name.
func Bind(c *gin.Context, form any) FieldErrors {
	errs := FieldErrors{}
	if err := c.Request.ParseForm(); err != nil {
		errs.Add(NonFieldErrors, "The submitted form could not be read.")
		return errs
	}
	for _, values := range c.Request.Form {
		for i, v := range values {
			values[i] = strings.TrimSpace(v)
		}
	}

	if err := c.ShouldBindWith(form, binding.Form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs.Add(NonFieldErrors, err.Error())
			return errs
		}
		for _, fe := range verrs {
			errs.Add(formFieldName(form, fe.StructField()), validationMessage(fe))
		}
	}
	return errs
}

func formFieldName(form any, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		if name := strings.Split(f.Tag.Get("form"), ",")[0]; name != "" {
			return name
		}
	}
	return strings.ToLower(structField)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
			fe.Param(), len([]rune(fmt.Sprint(fe.Value()))))
	case "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	case "number", "numeric":
		return msgWholeNumber
	default:
		return msgInvalidValue
	}
}

// parseOptionalInt parses an empty string as nil.
func parseOptionalInt(raw string) (*int, string) {
	if raw == "" {
		return nil, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, msgWholeNumber
	}
	return &n, ""
}

// parseOptionalDecimal enforces a fixed-precision column: maxDigits in total,
// at most places of them after the decimal point, one optional leading sign
// and never below zero.
func parseOptionalDecimal(raw string, maxDigits, places int) (*float64, string) {
	if raw == "" {
		return nil, ""
	}
	digits, negative := raw, false
	switch raw[0] {
	case '-':
		digits, negative = raw[1:], true
	case '+':
		digits = raw[1:]
	}
	whole, frac, _ := strings.Cut(digits, ".")
	if !allDigits(whole+frac) || whole+frac == "" {
		return nil, msgNumber
	}
	if negative && strings.Trim(whole+frac, "0") != "" {
		return nil, "Ensure this value is greater than or equal to 0."
	}
	whole = strings.TrimLeft(whole, "0")
	if len(whole)+len(frac) > maxDigits {
		return nil, fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)
	}
	if len(frac) > places {
		return nil, fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
	}
	if len(whole) > maxDigits-places {
		return nil, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil, msgNumber
	}
	return &v, ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatOptionalDecimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// DateTimeInputLayout is what an <input type="datetime-local"> submits.
const DateTimeInputLayout = "2006-01-02T15:04"

var dateTimeLayouts = []string{
	DateTimeInputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// parseDateTime accepts datetime-local input and RFC 3339; naive values are UTC.
func parseDateTime(raw string) (time.Time, string) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), ""
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, ""
		}
	}
	return time.Time{}, msgDateTime
}

// parseCheckbox follows browser checkbox semantics: absent means false.
func parseCheckbox(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "false", "0", "off", "no":
		return false
	default:
		return true
	}
}
