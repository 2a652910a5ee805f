package rut

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrEmpty      = errors.New("rut: empty input")
	ErrMalformed  = errors.New("rut: malformed body or check digit")
	ErrOutOfRange = errors.New("rut: body outside accepted range")
	ErrCheckDigit = errors.New("rut: check digit mismatch")
)

var canonicalPattern = regexp.MustCompile(`^\d{7,8}[0-9K]$`)

// RUT is a parsed Rol Único Tributario. The zero value is not a valid RUT.
type RUT struct {
	Body       string
	CheckDigit byte
}

// String returns the grouped XX.XXX.XXX-X form.
func (r RUT) String() string {
	return groupThousands(r.Body) + "-" + string(r.CheckDigit)
}

// Compact returns the body followed by the check digit, without punctuation.
func (r RUT) Compact() string {
	return r.Body + string(r.CheckDigit)
}

// Normalize strips dots, hyphens and spaces and uppercases the remainder.
func Normalize(raw string) string {
	cleaned := strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw)
	return strings.ToUpper(cleaned)
}

// CheckDigit computes the modulo-11 check character for an all-digit body.
// Weights 2..7 are applied cyclically from the rightmost digit.
func CheckDigit(body string) (byte, error) {
	if body == "" || !isDigits(body) {
		return 0, ErrMalformed
	}
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch check := 11 - sum%11; check {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + check), nil
	}
}

// IsValid reports whether raw is a valid RUT under the default policy.
func IsValid(raw string) bool {
	return Validator{Policy: DefaultPolicy()}.IsValid(raw)
}

// Parse validates raw under the default policy and returns the parsed RUT.
func Parse(raw string) (RUT, error) {
	return Validator{Policy: DefaultPolicy()}.Parse(raw)
}

// Format renders raw as XX.XXX.XXX-X. Input that does not look like a RUT
// (7-8 digits plus a check character) is returned unchanged; the check digit
// itself is not verified here.
func Format(raw string) string {
	if raw == "" {
		return ""
	}
	clean := Normalize(raw)
	if !canonicalPattern.MatchString(clean) {
		return raw
	}
	body, dv := clean[:len(clean)-1], clean[len(clean)-1:]
	return groupThousands(body) + "-" + dv
}

func groupThousands(body string) string {
	var b strings.Builder
	lead := len(body) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(body[:min(lead, len(body))])
	for i := lead; i < len(body); i += 3 {
		b.WriteByte('.')
		b.WriteString(body[i : i+3])
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func bodyValue(body string) (int64, bool) {
	v, err := strconv.ParseInt(body, 10, 64)
	return v, err == nil
}
