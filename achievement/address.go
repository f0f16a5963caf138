package achievement

import "errors"

// ErrInvalidAddress is returned for addresses that are not 0x-prefixed
// 20-byte hex strings
var ErrInvalidAddress = errors.New("invalid address")

// ValidAddress reports whether s is a 0x-prefixed 40-digit hex address
func ValidAddress(s string) bool {
	if len(s) != 42 {
		return false
	}
	if s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
