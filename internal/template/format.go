package template

import (
	"fmt"
	"strings"

	"mvdan.cc/gofumpt/format"
)

// FormatGo formats rendered Go source with gofumpt. Content for paths not
// ending in .go is returned unchanged.
func FormatGo(content []byte, path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".go") {
		return content, nil
	}
	formatted, err := format.Source(content, format.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	return formatted, nil
}
