package tonebank

import (
	"errors"
	"testing"
)

func TestNewDerivedToneWins(t *testing.T) {
	// The declared tone disagrees with the diacritic; the diacritic wins.
	bank, dropped, err := New([]RawEntry{
		{Character: "妈", Pinyin: "mā", Tone: 3, Meaning: "mother"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("dropped = %d, want 0", len(dropped))
	}
	entry := bank.Entries()[0]
	if entry.EffectiveTone != 1 {
		t.Errorf("EffectiveTone = %d, want 1", entry.EffectiveTone)
	}
	if entry.DerivedTone != 1 || entry.DeclaredTone != 3 {
		t.Errorf("derived/declared = %d/%d, want 1/3", entry.DerivedTone, entry.DeclaredTone)
	}
}

func TestNewDeclaredFallback(t *testing.T) {
	// No diacritic in the pinyin; the declared tone is used.
	bank, _, err := New([]RawEntry{
		{Character: "四", Pinyin: "si", Tone: 4, Meaning: "four"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := bank.Entries()[0].EffectiveTone; got != 4 {
		t.Errorf("EffectiveTone = %d, want 4", got)
	}
}

func TestNewDropsUnresolvable(t *testing.T) {
	bank, dropped, err := New([]RawEntry{
		{Character: "好", Pinyin: "hǎo", Meaning: "good"},
		{Character: "", Pinyin: "mā", Tone: 1},
		{Character: "呢", Pinyin: "ne", Tone: 0},
		{Character: "吧", Pinyin: "ba", Tone: 7},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if bank.Len() != 1 {
		t.Errorf("Len = %d, want 1", bank.Len())
	}
	if len(dropped) != 3 {
		t.Fatalf("dropped = %d, want 3", len(dropped))
	}
	if dropped[0].Reason != "empty character" {
		t.Errorf("dropped[0].Reason = %q", dropped[0].Reason)
	}
}

func TestNewEmptyBank(t *testing.T) {
	_, _, err := New([]RawEntry{
		{Character: "呢", Pinyin: "ne"},
	})
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank", err)
	}

	_, _, err = New(nil)
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank for nil input", err)
	}
}

func TestDefaultBank(t *testing.T) {
	bank, dropped, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("built-in bank dropped %d entries: %+v", len(dropped), dropped)
	}
	if bank.Len() < 100 {
		t.Errorf("built-in bank has %d entries, want at least 100", bank.Len())
	}
	for _, e := range bank.Entries() {
		if !ValidTone(e.EffectiveTone) {
			t.Errorf("entry %q has invalid effective tone %d", e.Character, e.EffectiveTone)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	bank, _, err := New([]RawEntry{
		{Character: "好", Pinyin: "hǎo", Meaning: "good"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	entries := bank.Entries()
	entries[0].Character = "mutated"
	if bank.Entries()[0].Character != "好" {
		t.Fatal("Entries exposed internal state")
	}
}
