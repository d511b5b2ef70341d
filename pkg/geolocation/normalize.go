package geolocation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// flexString is a JSON scalar providers send either as
// a string or as a number. Other JSON types decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		*s = ""
	case b[0] == '"':
		var value string
		err := json.Unmarshal(b, &value)
		if err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(value))
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*s = flexString(b)
	default: // null, booleans, objects and arrays
		*s = ""
	}
	return nil
}

func (s flexString) String() string { return string(s) }

// flexNumber is a coordinate sent either as a JSON number or as
// a numeric string. Anything else, including non finite values,
// decodes to an absent value.
type flexNumber struct {
	value *float64
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	n.value = parseCoordinate(b)
	return nil
}

func parseCoordinate(b []byte) *float64 {
	s := string(bytes.TrimSpace(b))
	if strings.HasPrefix(s, `"`) {
		err := json.Unmarshal([]byte(s), &s)
		if err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
	}

	if s == "" {
		return nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// flexBool is true when the JSON value would be truthy in a
// browser: anything but false, null, 0 and "".
type flexBool bool

func (t *flexBool) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "", "false", "null", "0", `""`:
		*t = false
	default:
		*t = true
	}
	return nil
}

func firstNonEmpty(values ...flexString) string {
	for _, value := range values {
		if value != "" {
			return string(value)
		}
	}
	return ""
}

func firstNumber(values ...flexNumber) *float64 {
	for _, value := range values {
		if value.value != nil {
			return value.value
		}
	}
	return nil
}

// joinNonEmpty joins the non empty parts with a single space.
func joinNonEmpty(parts ...flexString) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, string(part))
		}
	}
	return strings.TrimSpace(strings.Join(nonEmpty, " "))
}

// formatASN prefixes a bare AS number with "AS". An already
// prefixed identifier is returned as is, and 0 means unknown.
func formatASN(asn flexString) string {
	s := string(asn)
	switch {
	case s == "" || s == "0":
		return ""
	case strings.HasPrefix(strings.ToUpper(s), "AS"):
		return s
	default:
		return "AS" + s
	}
}
