package handlers

import "strconv"

// limitOr parses a limit query param, falling back to def when the value
// is empty, unparseable, or not positive.
func limitOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// parseID parses a numeric record id from a path segment.
func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
