// Package ipaddress validates IP addresses syntactically and
// classifies them by address family.
package ipaddress

import (
	"errors"
	"regexp"
	"strings"
)

type Family uint8

const (
	Unknown Family = iota
	IPv4
	IPv6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return ""
	}
}

var (
	ipv4Regex = regexp.MustCompile(`^(25[0-5]|2[0-4]\d|[01]?\d?\d)(\.(25[0-5]|2[0-4]\d|[01]?\d?\d)){3}$`)
	ipv6Regex = regexp.MustCompile(`^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$|^(([0-9a-fA-F]{1,4}:){1,7}:)$|^(:(:[0-9a-fA-F]{1,4}){1,7})$|^([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}$|^([0-9a-fA-F]{1,4}:){1,5}(:[0-9a-fA-F]{1,4}){1,2}$|^([0-9a-fA-F]{1,4}:){1,4}(:[0-9a-fA-F]{1,4}){1,3}$|^([0-9a-fA-F]{1,4}:){1,3}(:[0-9a-fA-F]{1,4}){1,4}$|^([0-9a-fA-F]{1,4}:){1,2}(:[0-9a-fA-F]{1,4}){1,5}$|^[0-9a-fA-F]{1,4}:((:[0-9a-fA-F]{1,4}){1,6})$|^::(ffff(:0{1,4}){0,1}:){0,1}((25[0-5]|(2[0-4]|1{0,1}\d|)[0-9])\.){3,3}(25[0-5]|(2[0-4]|1{0,1}\d|)[0-9])$|^([0-9a-fA-F]{1,4}:){1,4}:((25[0-5]|(2[0-4]|1{0,1}\d|)[0-9])\.){3,3}(25[0-5]|(2[0-4]|1{0,1}\d|)[0-9])$`) //nolint:lll
)

var ErrInvalidAddress = errors.New("please enter a valid IPv4 or IPv6 address")

// Validate trims the input and returns its address family if it
// fully matches the IPv4 or IPv6 grammar. A candidate using the ::
// compression more than once never matches.
func Validate(input string) (family Family, err error) {
	trimmed := strings.TrimSpace(input)
	switch {
	case ipv4Regex.MatchString(trimmed):
		return IPv4, nil
	case ipv6Regex.MatchString(trimmed):
		return IPv6, nil
	default:
		return Unknown, ErrInvalidAddress
	}
}

// FamilyOf returns the display family of an already validated address.
func FamilyOf(address string) Family {
	switch {
	case address == "":
		return Unknown
	case strings.Contains(address, ":"):
		return IPv6
	default:
		return IPv4
	}
}
