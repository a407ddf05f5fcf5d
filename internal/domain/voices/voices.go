// Package voices enumerates the synthetic voices the speech service supports.
package voices

import (
	"fmt"
	"sort"

	"github.com/rohitk523/adk-project/internal/types"
)

const Default = "alloy"

var supported = map[string]string{
	"alloy":   "Neutral, balanced voice",
	"echo":    "Male voice",
	"fable":   "British accent",
	"onyx":    "Deep male voice",
	"nova":    "Female voice",
	"shimmer": "Soft female voice",
}

// Validate checks the selector against the supported set. An empty selector
// resolves to the default. Must run before any synthesis network call.
func Validate(voice string) (string, error) {
	if voice == "" {
		return Default, nil
	}
	if _, ok := supported[voice]; !ok {
		return "", fmt.Errorf("%w: unsupported voice %q (supported: %v)", types.ErrValidation, voice, Names())
	}
	return voice, nil
}

// Names returns the supported selectors in stable order.
func Names() []string {
	out := make([]string, 0, len(supported))
	for v := range supported {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Describe returns the human description for a supported selector.
func Describe(voice string) (string, bool) {
	d, ok := supported[voice]
	return d, ok
}
