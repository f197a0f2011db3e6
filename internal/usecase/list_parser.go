package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseList reads a grocery list line by line, strips leading list markup,
// lower-cases each line, and drops blanks. The returned slice preserves
// line order.
func ParseList(r io.Reader) ([]string, error) {
	var items []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := StripListMarkup(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grocery list: %w", err)
	}

	return items, nil
}
