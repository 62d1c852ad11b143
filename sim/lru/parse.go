package lru

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultFrameCount is used when the frame count cannot be parsed.
	DefaultFrameCount = 3
	// MinFrameCount and MaxFrameCount bound the frame count accepted at the boundary.
	MinFrameCount = 1
	MaxFrameCount = 10
)

var (
	// ErrInvalidInput is wrapped by every boundary validation error in this package.
	ErrInvalidInput = errors.New("invalid lru input")
	// ErrEmptyReferenceString reports a reference string with no parseable page.
	ErrEmptyReferenceString = fmt.Errorf("%w: enter a valid reference string", ErrInvalidInput)
	// ErrInvalidFrameCount reports a frame count outside the accepted range.
	ErrInvalidFrameCount = fmt.Errorf("%w: frame count out of range", ErrInvalidInput)
)

// ParseReferenceString turns comma-separated text into page numbers. Tokens are
// trimmed; empty or non-integer tokens are dropped without error.
func ParseReferenceString(raw string) []int {
	pages := make([]int, 0)
	for _, tok := range strings.Split(raw, ",") {
		page, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		pages = append(pages, page)
	}
	return pages
}

// FormatReferenceString is the inverse of ParseReferenceString for clean input.
func FormatReferenceString(refs []int) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}

// ParseFrameCount parses a frame count field, returning def when raw is not an integer.
func ParseFrameCount(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// ValidateFrameCount rejects frame counts below one or outside [lo, hi].
func ValidateFrameCount(n, lo, hi int) error {
	if n < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidFrameCount, n)
	}
	if n < lo || n > hi {
		return fmt.Errorf("%w: must be in [%d, %d], got %d", ErrInvalidFrameCount, lo, hi, n)
	}
	return nil
}

// ValidateReferenceString rejects an empty parsed reference string.
func ValidateReferenceString(refs []int) error {
	if len(refs) == 0 {
		return ErrEmptyReferenceString
	}
	return nil
}
