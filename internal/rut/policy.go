package rut

// Policy bounds the accepted RUT body.
type Policy struct {
	MinDigits int
	MaxDigits int
	// StrictRange additionally requires MinBody <= body <= MaxBody.
	StrictRange bool
	MinBody     int64
	MaxBody     int64
}

// DefaultPolicy accepts any 7 or 8 digit body.
func DefaultPolicy() Policy {
	return Policy{
		MinDigits: 7,
		MaxDigits: 8,
		MinBody:   1_000_000,
		MaxBody:   25_000_000,
	}
}

// StrictPolicy is DefaultPolicy limited to bodies in [1,000,000; 25,000,000],
// the range issued to natural persons.
func StrictPolicy() Policy {
	p := DefaultPolicy()
	p.StrictRange = true
	return p
}

type Validator struct {
	Policy Policy
}

func (v Validator) IsValid(raw string) bool {
	_, err := v.Parse(raw)
	return err == nil
}

// Parse normalizes raw and checks it against the policy and the check digit.
func (v Validator) Parse(raw string) (RUT, error) {
	clean := Normalize(raw)
	if clean == "" {
		return RUT{}, ErrEmpty
	}
	body, dv := clean[:len(clean)-1], clean[len(clean)-1]
	if body == "" || !isDigits(body) {
		return RUT{}, ErrMalformed
	}
	if !isCheckChar(dv) {
		return RUT{}, ErrMalformed
	}
	if len(body) < v.Policy.MinDigits || len(body) > v.Policy.MaxDigits {
		return RUT{}, ErrMalformed
	}
	if v.Policy.StrictRange {
		n, ok := bodyValue(body)
		if !ok || n < v.Policy.MinBody || n > v.Policy.MaxBody {
			return RUT{}, ErrOutOfRange
		}
	}
	want, err := CheckDigit(body)
	if err != nil {
		return RUT{}, err
	}
	if want != dv {
		return RUT{}, ErrCheckDigit
	}
	return RUT{Body: body, CheckDigit: dv}, nil
}

func isCheckChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == 'K'
}
