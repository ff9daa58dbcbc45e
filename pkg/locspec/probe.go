package locspec

import (
	"strings"
)

// ProbeRegistry recognizes dynamic instrumentation probe specs.
type ProbeRegistry interface {
	// Recognize reports whether text is a probe location spec. It must
	// not consume input: on success the dispatcher takes the whole
	// remaining input as the probe spec.
	Recognize(text string) bool
}

// probeKeywords are the linespec keywords of the statically known
// probe types: the generic spec and the SystemTap and DTrace variants.
// The short forms are why "-p" never starts an explicit location.
var probeKeywords = []string{
	"-probe-stap", "-probe-dtrace", "-probe", "-ps", "-pd", "-p",
}

// StaticProbeRegistry recognizes the probe specs of the statically
// known probe types.
type StaticProbeRegistry struct{}

// Recognize implements ProbeRegistry.
func (StaticProbeRegistry) Recognize(text string) bool {
	for _, kw := range probeKeywords {
		if !strings.HasPrefix(text, kw) {
			continue
		}
		if len(text) == len(kw) || isSpace(text[len(kw)]) {
			return true
		}
	}
	return false
}
