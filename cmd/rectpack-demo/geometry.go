package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseGeometryList parses either a single integer or exactly n colon-separated integers; a
// single value fills all n fields — the shorthand documented for -max-size, -padding, and
// -spacing (e.g. "100" means "100:100"). Any other number of values is an error.
func parseGeometryList(s string, n int) ([]int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 1 && len(parts) != n {
		return nil, fmt.Errorf("expected 1 or %d colon-separated values, got %d", n, len(parts))
	}

	values := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		values[i] = v
	}

	if len(parts) == 1 {
		for i := 1; i < n; i++ {
			values[i] = values[0]
		}
	}

	return values, nil
}
