package tonebank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBankFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bank file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeBankFile(t, strings.Join([]string{
		"# character\tpinyin\ttone\tmeaning",
		"",
		"你\tnǐ\t\tyou",
		"四\tsi\t4\tfour",
		"水\tshuǐ",
	}, "\n"))

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Character != "你" || entries[0].Pinyin != "nǐ" || entries[0].Meaning != "you" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Tone != 4 {
		t.Errorf("entries[1].Tone = %d, want 4", entries[1].Tone)
	}
	if entries[2].Character != "水" || entries[2].Tone != 0 {
		t.Errorf("entries[2] = %+v", entries[2])
	}
}

func TestLoadFileInvalidTone(t *testing.T) {
	path := writeBankFile(t, "你\tnǐ\tx\tyou\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid tone column")
	}
}

func TestLoadFileTooFewFields(t *testing.T) {
	path := writeBankFile(t, "你\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for missing pinyin column")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeBankFile(t, "# only a comment\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty bank file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
