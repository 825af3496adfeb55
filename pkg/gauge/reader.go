package gauge

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dataLine matches one gauge record: a record number with a closing paren,
// a date, a time, then the sea-level and residual fields. The value fields
// admit the quality-flag letters so a flagged reading still matches and can
// be converted to a missing marker instead of being dropped.
//
//	7894) 1947/11/25 21:00:00 3.4804 0.1912
var dataLine = regexp.MustCompile(`^\s*\d+\)\s+(\d{4}/\d{2}/\d{2})\s+(\d{2}:\d{2}:\d{2})\s+([\d.\-A-Z]+)\s+([\d.\-A-Z]+)`)

const timeLayout = "2006/01/02 15:04:05"

// Format describes the fixed text layout of a tide-gauge file. The zero
// value is not useful; start from DefaultFormat.
type Format struct {
	// HeaderLines is the number of leading lines discarded before any
	// record matching is attempted.
	HeaderLines int
	// FlagChars are the quality-flag letters that mark a sea-level field
	// as missing or suspect when they terminate the field.
	FlagChars string
	// Extension selects which files ReadDir considers.
	Extension string
}

// DefaultFormat returns the layout used by the UK gauge archive:
// eleven header lines, N/T/M trailing flags, .txt files.
func DefaultFormat() Format {
	return Format{HeaderLines: 11, FlagChars: "NTM", Extension: ".txt"}
}

// ReadFile parses a single gauge file and returns its readings in file
// order. Lines that do not match the record layout are skipped. A
// sea-level field ending in one of the flag letters becomes a missing
// reading. A file shorter than the header is not an error; it yields an
// empty series. I/O failures are returned wrapped with the path.
func (f Format) ReadFile(path string) (Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gauge file %s: %w", path, err)
	}
	defer file.Close()

	var series Series
	scanner := bufio.NewScanner(file)

	for skipped := 0; skipped < f.HeaderLines; skipped++ {
		if !scanner.Scan() {
			// Header ran out before any data. Ragged but tolerated.
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading gauge file %s: %w", path, err)
			}
			return series, nil
		}
	}

	for scanner.Scan() {
		m := dataLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		ts, err := time.Parse(timeLayout, m[1]+" "+m[2])
		if err != nil {
			continue
		}
		series = append(series, f.parseValue(ts, m[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gauge file %s: %w", path, err)
	}
	return series, nil
}

// parseValue converts one sea-level field into a reading. A trailing flag
// letter means no usable measurement; so does a field that fails to parse
// as a number despite matching the record pattern.
func (f Format) parseValue(ts time.Time, field string) Reading {
	if strings.ContainsRune(f.FlagChars, rune(field[len(field)-1])) {
		return Reading{Time: ts}
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return Reading{Time: ts}
	}
	return Reading{Time: ts, SeaLevel: v, Valid: true}
}

// ReadDir assembles every gauge file in dir into one series sorted by
// timestamp. Files are parsed in lexicographic name order and the combined
// result is stable-sorted, so readings with equal timestamps keep the
// order their files were read in. Any listing or per-file failure aborts
// the whole assembly; there are no partial results.
func (f Format) ReadDir(dir string) (Series, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing gauge directory %s: %w", dir, err)
	}

	var combined Series
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), f.Extension) {
			continue
		}
		part, err := f.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}

	sortByTime(combined)
	return combined, nil
}
