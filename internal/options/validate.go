// Package options validates the input sources of functional option sets.
package options

import (
	"strings"

	"github.com/erraggy/postman2openapi/oaserrors"
)

// Source is one way of supplying an input, named after the option that sets it.
type Source struct {
	Option string
	Set    bool
}

// ExactlyOne ensures exactly one of sources is set. what names the input
// in error messages, e.g. "collection".
func ExactlyOne(what string, sources ...Source) error {
	switch count(sources) {
	case 0:
		return &oaserrors.ConfigError{
			Option:  names(sources),
			Message: "must specify a " + what + " source",
		}
	case 1:
		return nil
	default:
		return &oaserrors.ConfigError{
			Option:  names(sources),
			Message: "must specify exactly one " + what + " source",
		}
	}
}

// AtMostOne ensures no more than one of sources is set.
func AtMostOne(what string, sources ...Source) error {
	if count(sources) > 1 {
		return &oaserrors.ConfigError{
			Option:  names(sources),
			Message: "must specify at most one " + what + " source",
		}
	}
	return nil
}

func count(sources []Source) int {
	n := 0
	for _, s := range sources {
		if s.Set {
			n++
		}
	}
	return n
}

func names(sources []Source) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.Option
	}
	return strings.Join(parts, "/")
}
