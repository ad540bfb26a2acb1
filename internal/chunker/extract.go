package chunker

import "fmt"

// Extract returns the runes of the normalized text in the half-open range
// [start, end). Ranges that do not fit the text are rejected with
// ErrRangeOutOfBounds instead of being clamped.
func Extract(text string, start, end int) (string, error) {
	runes := []rune(Normalize(text))
	if err := checkRange(len(runes), start, end); err != nil {
		return "", err
	}
	return string(runes[start:end]), nil
}

func checkRange(length, start, end int) error {
	switch {
	case start < 0 || end < 0:
		return fmt.Errorf("%w: offsets must be non-negative, got [%d:%d]", ErrRangeOutOfBounds, start, end)
	case start > end:
		return fmt.Errorf("%w: start %d is after end %d", ErrRangeOutOfBounds, start, end)
	case end > length:
		return fmt.Errorf("%w: end %d exceeds text length %d", ErrRangeOutOfBounds, end, length)
	}
	return nil
}
