// File: justify.go
// Title: Fixed-Width Justification
// Description: Pads a Text to a fixed width with a fill byte. A width that
//              does not exceed the current length leaves the text unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package textx

// LeftJustify pads str on the right with fill up to width
func LeftJustify(str Text, width int, fill byte) (Text, error) {
	if width <= len(str.b) {
		return str, nil
	}
	if err := checkSize("left_justify", int64(width)); err != nil {
		return Text{}, err
	}

	out := make([]byte, width)
	n := copy(out, str.b)
	for i := n; i < width; i++ {
		out[i] = fill
	}
	return Text{b: out}, nil
}

// RightJustify pads str on the left with fill up to width
func RightJustify(str Text, width int, fill byte) (Text, error) {
	if width <= len(str.b) {
		return str, nil
	}
	if err := checkSize("right_justify", int64(width)); err != nil {
		return Text{}, err
	}

	out := make([]byte, width)
	pad := width - len(str.b)
	for i := 0; i < pad; i++ {
		out[i] = fill
	}
	copy(out[pad:], str.b)
	return Text{b: out}, nil
}

// CenterJustify pads str on both sides with fill up to width. When the
// padding p is odd the left-justify step takes the larger half, so the
// text sits one position left of center: CenterJustify("x", 4, '*') is
// "*x**".
func CenterJustify(str Text, width int, fill byte) (Text, error) {
	if width <= len(str.b) {
		return str, nil
	}
	if err := checkSize("center_justify", int64(width)); err != nil {
		return Text{}, err
	}

	p := width - len(str.b)
	lwidth := p/2 + p%2
	rwidth := p / 2

	left, err := LeftJustify(str, len(str.b)+lwidth, fill)
	if err != nil {
		return Text{}, err
	}
	return RightJustify(left, len(left.b)+rwidth, fill)
}
