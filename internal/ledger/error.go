package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrRoomTypeUnknown  = errors.New("unknown room type")
	ErrCapacityExceeded = errors.New("not enough stock for the requested nights")
	ErrPersistence      = errors.New("occupancy store failure")
)

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

// Error renders the fields in sorted order so the message is deterministic.
func (ie *InputError) Error() string {
	fields := make([]string, 0, len(ie.fields))
	for field := range ie.fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	var b strings.Builder

	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}

		fmt.Fprintf(&b, "%s: %s", field, strings.Join(ie.fields[field], ", "))
	}

	return b.String()
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
