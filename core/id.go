package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a remote identifier. The API is not consistent about sending ids as
// numbers or strings, so both decode into the same normalized text form.
type ID string

func ParseID(s string) ID {
	return ID(strings.TrimSpace(s))
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Equal compares ids loosely: 7, "7" and " 7 " are the same id.
func (id ID) Equal(other ID) bool {
	a, b := strings.TrimSpace(string(id)), strings.TrimSpace(string(other))
	if a == b {
		return true
	}

	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	return errA == nil && errB == nil && na == nb
}

// Int returns the numeric form of the id, if it has one.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
	return n, err == nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}

	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ParseID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid id %s: %w", b, err)
		}
		*id = ID(n.String())
	}

	return nil
}

// Key is the canonical form of the id, suitable for map keys: ids that are
// Equal have the same Key.
func (id ID) Key() string {
	if n, ok := id.Int(); ok {
		return strconv.FormatInt(n, 10)
	}

	return strings.TrimSpace(string(id))
}
