package mandel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPair is wrapped by ParseBounds and ParsePoint when their
// input does not match the "<left><separator><right>" form.
var ErrMalformedPair = errors.New("mandel: malformed pair")

// splitPair splits s at the first occurrence of sep, requiring a non-empty
// operand on each side.
func splitPair(s string, sep byte) (left, right string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// ParseBounds parses image dimensions in "WIDTHxHEIGHT" form, for example
// "1000x750". Both dimensions must be positive integers.
func ParseBounds(s string) (Bounds, error) {
	ws, hs, ok := splitPair(s, 'x')
	if !ok {
		return Bounds{}, fmt.Errorf("%w: dimensions %q", ErrMalformedPair, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: dimensions %q", ErrMalformedPair, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: dimensions %q", ErrMalformedPair, s)
	}
	b := Bounds{Width: w, Height: h}
	if !b.Valid() {
		return Bounds{}, fmt.Errorf("mandel: dimensions %q must be positive", s)
	}
	return b, nil
}

// ParsePoint parses a complex-plane point in "RE,IM" form, for example
// "-1.20,0.35". Both parts are 64-bit floats.
func ParsePoint(s string) (complex128, error) {
	res, ims, ok := splitPair(s, ',')
	if !ok {
		return 0, fmt.Errorf("%w: point %q", ErrMalformedPair, s)
	}
	re, err := strconv.ParseFloat(res, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: point %q", ErrMalformedPair, s)
	}
	im, err := strconv.ParseFloat(ims, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: point %q", ErrMalformedPair, s)
	}
	return complex(re, im), nil
}
