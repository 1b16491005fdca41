package reliability

import (
	"errors"
	"fmt"
)

const (
	MinFactor = 1
	MaxFactor = 10
)

var ErrFactorOutOfRange = errors.New("risk factor out of range")

// CalculateRPN возвращает severity × occurrence × detection (1..1000).
func CalculateRPN(severity, occurrence, detection int) (int, error) {
	factors := []struct {
		name  string
		value int
	}{
		{"severity", severity},
		{"occurrence", occurrence},
		{"detection", detection},
	}
	for _, f := range factors {
		if f.value < MinFactor || f.value > MaxFactor {
			return 0, fmt.Errorf("%w: %s=%d, expected %d..%d", ErrFactorOutOfRange, f.name, f.value, MinFactor, MaxFactor)
		}
	}
	return severity * occurrence * detection, nil
}
