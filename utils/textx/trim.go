// File: trim.go
// Title: Whitespace Trimming
// Description: Strips leading and trailing ASCII spaces (0x20). Tabs and
//              newlines are content, not padding, and are left alone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package textx

const space = ' '

// TrimLeft removes leading spaces
func TrimLeft(str Text) Text {
	i := 0
	for i < len(str.b) && str.b[i] == space {
		i++
	}
	if i == 0 {
		return str
	}
	return Text{b: clone(str.b[i:])}
}

// TrimRight removes trailing spaces
func TrimRight(str Text) Text {
	j := len(str.b)
	for j > 0 && str.b[j-1] == space {
		j--
	}
	if j == len(str.b) {
		return str
	}
	return Text{b: clone(str.b[:j])}
}

// Trim removes leading, then trailing spaces
func Trim(str Text) Text {
	return TrimRight(TrimLeft(str))
}
