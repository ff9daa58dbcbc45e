package locspec

import (
	"fmt"
)

// MatchType specifies how a function or symbol name in a location is
// matched against the symbols of the debugged program.
type MatchType uint8

const (
	// MatchWild matches a symbol by any of its names.
	MatchWild MatchType = iota
	// MatchFull matches a symbol by its fully qualified name only.
	MatchFull
)

func (m MatchType) String() string {
	if m == MatchFull {
		return "full"
	}
	return "wild"
}

// Kind discriminates the payload held by a Location.
type Kind uint8

const (
	// KindLinespec is a source language location spec such as
	// "file.c:42" or a function name.
	KindLinespec Kind = iota
	// KindAddress is a numeric or symbolic address ("*0x4000").
	KindAddress
	// KindExplicit is a location built from discrete -source,
	// -function, -qualified, -line and -label options.
	KindExplicit
	// KindProbe is a dynamic instrumentation probe spec.
	KindProbe
)

func (k Kind) String() string {
	switch k {
	case KindLinespec:
		return "linespec"
	case KindAddress:
		return "address"
	case KindExplicit:
		return "explicit"
	case KindProbe:
		return "probe"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// OffsetSign is the sign of a line offset.
type OffsetSign uint8

const (
	// OffsetUnknown means no line offset was given. It is the zero
	// value and is distinct from an unsigned offset of zero.
	OffsetUnknown OffsetSign = iota
	// OffsetNone is an absolute line number with no sign.
	OffsetNone
	// OffsetPlus is a "+N" offset.
	OffsetPlus
	// OffsetMinus is a "-N" offset.
	OffsetMinus
)

// LineOffset is a line number or signed line offset of an explicit
// location. The zero value means no line offset was given.
type LineOffset struct {
	Sign   OffsetSign
	Offset int
}

// LinespecPayload is the payload of a linespec location.
type LinespecPayload struct {
	// Spec is the location spec text, empty if none was given.
	Spec string
	// MatchType is how a function name in Spec matches symbols.
	MatchType MatchType
}

// AddressPayload is the payload of an address location.
type AddressPayload struct {
	// Addr is the program address.
	Addr uint64
}

// ExplicitPayload is the payload of an explicit location. An empty
// string means the field was not given.
type ExplicitPayload struct {
	SourceFilename string
	FunctionName   string
	LabelName      string
	LineOffset     LineOffset
	// FuncMatchType is how FunctionName matches symbols; -qualified
	// sets it to MatchFull.
	FuncMatchType MatchType
}

// Location is a parsed event location. Exactly one payload, selected
// by the kind, is meaningful. A Location is immutable after
// construction except for the lazily computed canonical string, so a
// single value must not be shared between goroutines without external
// synchronization.
type Location struct {
	kind Kind

	linespec LinespecPayload
	addr     AddressPayload
	explicit ExplicitPayload
	probe    string

	// Canonical string cache. strSet distinguishes "computed and
	// empty" from "not yet computed" so String never recomputes.
	str    string
	strSet bool
}

// NewLinespecLocation returns a linespec location. spec must already be
// stripped of any trailing condition or keyword.
func NewLinespecLocation(spec string, matchType MatchType) *Location {
	return &Location{kind: KindLinespec, linespec: LinespecPayload{Spec: spec, MatchType: matchType}}
}

// NewAddressLocation returns an address location. addrText is the exact
// input span the address was parsed from; if not empty it becomes the
// canonical string of the location verbatim.
func NewAddressLocation(addr uint64, addrText string) *Location {
	l := &Location{kind: KindAddress, addr: AddressPayload{Addr: addr}}
	if addrText != "" {
		l.str = addrText
		l.strSet = true
	}
	return l
}

// NewProbeLocation returns a probe location for the given probe spec.
func NewProbeLocation(probe string) *Location {
	// The probe text doubles as the canonical string.
	return &Location{kind: KindProbe, probe: probe, str: probe, strSet: true}
}

// NewExplicitLocation returns an explicit location with the given
// payload. A nil payload yields an empty explicit location.
func NewExplicitLocation(explicit *ExplicitPayload) *Location {
	l := &Location{kind: KindExplicit}
	if explicit != nil {
		l.explicit = *explicit
	}
	return l
}

// Kind returns the location kind.
func (l *Location) Kind() Kind { return l.kind }

// Linespec returns the linespec payload. It panics if the location is
// not a linespec location.
func (l *Location) Linespec() *LinespecPayload {
	if l.kind != KindLinespec {
		panic("locspec: not a linespec location")
	}
	return &l.linespec
}

// Address returns the program address. It panics if the location is
// not an address location.
func (l *Location) Address() uint64 {
	if l.kind != KindAddress {
		panic("locspec: not an address location")
	}
	return l.addr.Addr
}

// Explicit returns the explicit payload. It panics if the location is
// not an explicit location.
func (l *Location) Explicit() *ExplicitPayload {
	if l.kind != KindExplicit {
		panic("locspec: not an explicit location")
	}
	return &l.explicit
}

// Probe returns the probe spec. It panics if the location is not a
// probe location.
func (l *Location) Probe() string {
	if l.kind != KindProbe {
		panic("locspec: not a probe location")
	}
	return l.probe
}

// Empty reports whether the location carries no location information.
// Only explicit locations can be empty: a bare "-qualified" parses to
// an empty explicit location. The function match type has no bearing
// on emptiness.
func (l *Location) Empty() bool {
	if l.kind != KindExplicit {
		return false
	}
	e := &l.explicit
	return e.SourceFilename == "" &&
		e.FunctionName == "" &&
		e.LabelName == "" &&
		e.LineOffset.Sign == OffsetUnknown
}

// Clone returns an independent copy of the location. Go strings are
// immutable, so copying the payloads by value is a deep copy; the
// clone carries its own canonical string cell.
func (l *Location) Clone() *Location {
	clone := *l
	return &clone
}

// String returns the canonical text of the location. It is computed at
// most once and afterwards returned verbatim, even when empty.
func (l *Location) String() string {
	if !l.strSet {
		l.str = l.computeString()
		l.strSet = true
	}
	return l.str
}

// SetString replaces the canonical text of the location. Callers use
// this when they have independently derived a better display string,
// for example after resolving the location.
func (l *Location) SetString(s string) {
	l.str = s
	l.strSet = true
}

func (l *Location) computeString() string {
	switch l.kind {
	case KindLinespec:
		if l.linespec.Spec == "" {
			return ""
		}
		if l.linespec.MatchType == MatchFull {
			return "-qualified " + l.linespec.Spec
		}
		return l.linespec.Spec
	case KindAddress:
		return fmt.Sprintf("*%#x", l.addr.Addr)
	case KindExplicit:
		return explicitToString(false, &l.explicit)
	case KindProbe:
		return l.probe
	}
	panic(fmt.Sprintf("locspec: unknown location kind %d", uint8(l.kind)))
}
