package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// List is a lowercase stopword set. A nil List contains nothing, so a
// missing stopword file degrades to no filtering.
type List map[string]struct{}

// Load reads one stopword per line from path. An empty path or a missing
// file yields a nil list and no error; the caller decides whether that
// is worth a warning.
func Load(path string) (List, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open stopword file: %w", err)
	}
	defer f.Close()

	list := List{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		list[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopword file: %w", err)
	}
	return list, nil
}

// Has reports whether the word is a stopword. Matching is case-insensitive.
func (l List) Has(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l[strings.ToLower(word)]
	return ok
}

// Len returns the number of loaded stopwords.
func (l List) Len() int {
	return len(l)
}
