package tonebank

import "errors"

// ErrEmptyBank indicates that no usable entries remain after validation.
// It is a configuration error and must be detected before a session starts.
var ErrEmptyBank = errors.New("tone bank has no usable entries")

// RawEntry is an authored word bank entry before validation.
type RawEntry struct {
	Character string
	Pinyin    string
	Tone      int
	Meaning   string
}

// Entry is a validated word bank entry. EffectiveTone is always 1-4.
type Entry struct {
	Character     string
	Pinyin        string
	Meaning       string
	DeclaredTone  int
	DerivedTone   int
	EffectiveTone int
}

// Dropped records an entry rejected during validation, for diagnostics.
type Dropped struct {
	Entry  RawEntry
	Reason string
}

// Bank is an immutable collection of validated entries.
type Bank struct {
	entries []Entry
}

// New validates raw entries and builds a Bank. The derived tone wins when the
// pinyin carries a mark; otherwise a valid declared tone is used; entries with
// neither are dropped and reported. An empty result yields ErrEmptyBank.
func New(raw []RawEntry) (*Bank, []Dropped, error) {
	entries := make([]Entry, 0, len(raw))
	var dropped []Dropped
	for _, r := range raw {
		if r.Character == "" {
			dropped = append(dropped, Dropped{Entry: r, Reason: "empty character"})
			continue
		}
		derived := DeriveTone(r.Pinyin)
		effective := derived
		if !ValidTone(effective) {
			effective = r.Tone
		}
		if !ValidTone(effective) {
			dropped = append(dropped, Dropped{Entry: r, Reason: "no resolvable tone"})
			continue
		}
		entries = append(entries, Entry{
			Character:     r.Character,
			Pinyin:        r.Pinyin,
			Meaning:       r.Meaning,
			DeclaredTone:  r.Tone,
			DerivedTone:   derived,
			EffectiveTone: effective,
		})
	}
	if len(entries) == 0 {
		return nil, dropped, ErrEmptyBank
	}
	return &Bank{entries: entries}, dropped, nil
}

// Default builds a Bank from the built-in word list.
func Default() (*Bank, []Dropped, error) {
	return New(builtin)
}

// Entries returns a copy of the validated entries.
func (b *Bank) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of usable entries.
func (b *Bank) Len() int {
	return len(b.entries)
}
