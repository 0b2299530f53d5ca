package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// StrToPositiveInt parses s as a base-10 integer and rejects values <= 0.
func StrToPositiveInt(s string) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("failed to parse '%s' as integer: %w", s, err)
	}
	if num <= 0 {
		return 0, fmt.Errorf("value %d must be greater than 0", num)
	}
	return num, nil
}
