package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Two time-string interpretations co-exist on purpose and must not be
// unified: StrictSeconds drives the advance comparison, ExtendedSeconds
// drives the study-time delta. They disagree on three-group inputs
// ("1:05:30" → 330 vs 3930).

// StrictSeconds converts a playback time string to total seconds for the
// advance comparison.
//
//	"m:ss" / "mm:ss"  → m*60 + ss
//	"a:b:c" (numeric) → b*60 + c, the first group is discarded
//
// Lesson videos are assumed to stay under 100 minutes, so the hour group
// carries no weight here. Any other input yields 0; no error is raised.
func StrictSeconds(s string) int {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
			return 0
		}
		if !allDigits(parts[0]) || !allDigits(parts[1]) {
			return 0
		}
		m, _ := strconv.Atoi(parts[0])
		sec, _ := strconv.Atoi(parts[1])
		return m*60 + sec
	case 3:
		if !allDigits(parts[0]) || !allDigits(parts[1]) || !allDigits(parts[2]) {
			return 0
		}
		m, _ := strconv.Atoi(parts[1])
		sec, _ := strconv.Atoi(parts[2])
		return m*60 + sec
	}
	return 0
}

// ExtendedSeconds converts a playback time string to total seconds for
// delta computation. A two-group "m:ss" string is zero-padded to
// "00:m:ss" first, so the hour group is retained when present:
//
//	"5:30"    → 330
//	"1:05:30" → 3930
//
// Unparseable input is an error, unlike StrictSeconds.
func ExtendedSeconds(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 2 {
		parts = append([]string{"00"}, parts...)
	}
	if len(parts) != 3 {
		return 0, fmt.Errorf("time %q: want m:ss or h:m:ss", s)
	}
	for _, p := range parts {
		if !allDigits(p) {
			return 0, fmt.Errorf("time %q: group %q is not numeric", s, p)
		}
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	sec, _ := strconv.Atoi(parts[2])
	return h*3600 + m*60 + sec, nil
}

// ShouldAdvance reports whether newPos supersedes storedPos under the
// strict interpretation. Equality never advances.
func ShouldAdvance(newPos, storedPos string) bool {
	return StrictSeconds(newPos) > StrictSeconds(storedPos)
}

// PositionToken derives the compact position representation stored on
// audit rows: ":" becomes ".", then leading zeros and dots are stripped.
// An input that strips to nothing maps to "0".
//
//	"05:30"    → "5.30"
//	"00:02:00" → "2.00"
//	"0:00"     → "0"
func PositionToken(s string) string {
	token := strings.TrimLeft(strings.ReplaceAll(s, ":", "."), "0.")
	if token == "" {
		return "0"
	}
	return token
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
