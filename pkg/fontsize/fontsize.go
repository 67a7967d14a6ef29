// Package fontsize picks the point size used to draw an extension label.
package fontsize

import (
	"strconv"
	"unicode/utf8"
)

// Largest is the size used for labels of up to three characters.
const Largest = 10.0

// Smallest is the size used for labels of nine characters or more.
const Smallest = 4.0

// steps maps label lengths 4..8 to their size; shorter labels get Largest
// and longer ones get Smallest.
var steps = map[int]float64{
	4: 9,
	5: 8,
	6: 7,
	7: 6,
	8: 5,
}

// Resolve returns the font size for a label of labelLength characters.
// A non-nil override is returned unchanged.
func Resolve(labelLength int, override *float64) float64 {
	if override != nil {
		return *override
	}
	if labelLength <= 3 {
		return Largest
	}
	if size, ok := steps[labelLength]; ok {
		return size
	}
	return Smallest
}

// ForLabel resolves the size for label, counting characters rather than bytes.
func ForLabel(label string, override *float64) float64 {
	return Resolve(utf8.RuneCountInString(label), override)
}

// Format renders size as the shortest decimal text, so 10 becomes "10"
// and 10.5 stays "10.5".
func Format(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
