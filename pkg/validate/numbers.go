package validate

import "errors"

const (
	MinSelection = 5
	MaxSelection = 8
	MinNumber    = 1
	MaxNumber    = 16
)

var (
	ErrSelectionSize   = errors.New("select at least 5 and at most 8 numbers")
	ErrOutOfRange      = errors.New("numbers must be between 1 and 16")
	ErrDuplicateNumber = errors.New("numbers must not repeat")
)

// Numbers checks a board selection. Checks run in order and the first
// failure wins.
func Numbers(numbers []int32) error {
	if len(numbers) < MinSelection || len(numbers) > MaxSelection {
		return ErrSelectionSize
	}
	seen := make(map[int32]struct{}, len(numbers))
	for _, n := range numbers {
		if n < MinNumber || n > MaxNumber {
			return ErrOutOfRange
		}
	}
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			return ErrDuplicateNumber
		}
		seen[n] = struct{}{}
	}
	return nil
}
