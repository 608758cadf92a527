// Package slug encodes product URL segments of the form "<text>-<id>".
package slug

import (
	"errors"
	"strconv"
	"strings"

	gosimpleslug "github.com/gosimple/slug"
)

const separator = "-"

// ErrInvalidSlug is returned when the trailing segment is not a base-10 id.
var ErrInvalidSlug = errors.New("invalid slug")

// Encode joins text and id as "<text>-<id>".
func Encode(text string, id int64) string {
	return text + separator + strconv.FormatInt(id, 10)
}

// Decode returns the id held by the last hyphen-separated segment. Only the
// final segment counts, so "model-15-6-123" decodes to 123.
func Decode(composite string) (int64, error) {
	tail := composite
	if i := strings.LastIndex(composite, separator); i >= 0 {
		tail = composite[i+len(separator):]
	}

	if tail == "" || !allDigits(tail) {
		return 0, ErrInvalidSlug
	}

	id, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0, ErrInvalidSlug
	}
	return id, nil
}

// Make builds the URL segment for a product name, transliterating accents:
// ("Laptop Dell XPS 13", 123) -> "laptop-dell-xps-13-123".
func Make(name string, id int64) string {
	text := gosimpleslug.Make(name)
	if text == "" {
		text = "item"
	}
	return Encode(text, id)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
