package tonebank

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads raw entries from a tab-separated file with one entry per
// line: character, pinyin, tone, meaning. Blank lines and lines starting
// with '#' are skipped. The tone column may be empty when the pinyin
// carries a diacritic.
func LoadFile(path string) ([]RawEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only bank file.
			_ = cerr
		}
	}()

	var entries []RawEntry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least character and pinyin", lineNo)
		}
		entry := RawEntry{
			Character: strings.TrimSpace(fields[0]),
			Pinyin:    strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
			tone, err := strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid tone %q", lineNo, fields[2])
			}
			entry.Tone = tone
		}
		if len(fields) > 3 {
			entry.Meaning = strings.TrimSpace(fields[3])
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("tone bank file is empty")
	}
	return entries, nil
}
