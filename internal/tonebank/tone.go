// Package tonebank provides the validated Mandarin tone word bank.
package tonebank

import "strings"

// toneMarks holds the diacritic code points for tones 1-4, covering
// lower- and upper-case variants of a/e/i/o/u/ü. The sets are disjoint.
var toneMarks = [4]string{
	"āēīōūǖĀĒĪŌŪǕ",
	"áéíóúǘÁÉÍÓÚǗ",
	"ǎěǐǒǔǚǍĚǏǑǓǙ",
	"àèìòùǜÀÈÌÒÙǛ",
}

// DeriveTone derives the tone number from pinyin diacritics. It returns the
// tone of the first mark set that matches any character of the input, or 0
// when the pinyin carries no tone mark (neutral or missing).
func DeriveTone(pinyin string) int {
	for i, marks := range toneMarks {
		if strings.ContainsAny(pinyin, marks) {
			return i + 1
		}
	}
	return 0
}

// ValidTone reports whether tone is one of the four marked Mandarin tones.
func ValidTone(tone int) bool {
	return tone >= 1 && tone <= 4
}
