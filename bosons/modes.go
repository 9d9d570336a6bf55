// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"strconv"
)

// compareModes orders two mode lists elementwise; a strict prefix sorts
// before its extension, so [] < [0] < [0 1] < [1].
func compareModes(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return len(a) - len(b)
}

// equalModes reports elementwise equality.
func equalModes(a, b []int) bool { return compareModes(a, b) == 0 }

// renderModes appends one ladder letter per mode to buf.
func renderModes(buf []byte, letter byte, modes []int) []byte {
	for _, m := range modes {
		buf = append(buf, letter)
		buf = strconv.AppendInt(buf, int64(m), 10)
	}

	return buf
}

// parseModes splits canonical product text into creator and annihilator
// mode lists. Grammar: "I" for the identity, otherwise a run of c<mode>
// tokens followed by a run of a<mode> tokens.
func parseModes(s string) (creators, annihilators []int, err error) {
	if s == "" {
		return nil, nil, fmt.Errorf("empty input: %w", ErrParse)
	}
	if s == "I" {
		return nil, nil, nil
	}

	seenAnnihilator := false
	for i := 0; i < len(s); {
		letter := s[i]
		if letter != 'c' && letter != 'a' {
			return nil, nil, fmt.Errorf("unexpected %q at offset %d: %w", letter, i, ErrParse)
		}
		if letter == 'c' && seenAnnihilator {
			return nil, nil, fmt.Errorf("creator after annihilator at offset %d: %w", i, ErrParse)
		}
		if letter == 'a' {
			seenAnnihilator = true
		}
		i++

		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return nil, nil, fmt.Errorf("missing mode index at offset %d: %w", start, ErrParse)
		}
		mode, convErr := strconv.Atoi(s[start:i])
		if convErr != nil {
			return nil, nil, fmt.Errorf("mode index %q: %w", s[start:i], ErrParse)
		}

		if letter == 'c' {
			creators = append(creators, mode)
		} else {
			annihilators = append(annihilators, mode)
		}
	}

	return creators, annihilators, nil
}

// minCapacityModes returns the highest mode plus one over both lists.
func minCapacityModes(creators, annihilators []int) int {
	capacity := 0
	for _, m := range creators {
		if m+1 > capacity {
			capacity = m + 1
		}
	}
	for _, m := range annihilators {
		if m+1 > capacity {
			capacity = m + 1
		}
	}

	return capacity
}
