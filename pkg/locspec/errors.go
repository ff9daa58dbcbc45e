package locspec

import "fmt"

// UnmatchedQuoteError is returned when a quoted argument is opened but
// never closed.
type UnmatchedQuoteError struct {
	// Quote is the input from the opening quote character onward.
	Quote string
}

func (e UnmatchedQuoteError) Error() string {
	return fmt.Sprintf("unmatched quote, %s", e.Quote)
}

// InvalidOptionError is returned for a token that is shaped like an
// option but is not a known explicit location option.
type InvalidOptionError struct {
	Option string
}

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid explicit location argument, %q", e.Option)
}

// MissingArgumentError is returned when an explicit location option
// lacks its required argument.
type MissingArgumentError struct {
	Option string
}

func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument for %q", e.Option)
}

// UnanchoredFilenameError is returned when -source is given without a
// function, label or line offset to anchor it.
type UnanchoredFilenameError struct{}

func (e UnanchoredFilenameError) Error() string {
	return "source filename requires function, label, or line offset"
}

// MalformedLineOffsetError is returned when a -line argument is not a
// number with an optional leading sign.
type MalformedLineOffsetError struct {
	Offset string
}

func (e MalformedLineOffsetError) Error() string {
	return fmt.Sprintf("malformed line offset: %q", e.Offset)
}
