// Package locspec implements code to parse a string into a specific
// event location: the place in the debugged program where a breakpoint
// or tracepoint should be anchored.
//
// Four location forms are recognized:
//
// locStr ::= <linespec> | *<address> | <probe> | <explicit>
// * <linespec> is a source language spec such as "file.c:42" or a function name
// * *<address> is an address expression, for example *0x4000
// * <probe> is a dynamic instrumentation probe spec ("-probe provider:name")
// * <explicit> ::= ( -source <file> | -function <name> | -qualified | -line [+|-]<num> | -label <name> )*
//
// Explicit option keywords accept any unambiguous prefix abbreviation.
// Parsing is available in two modes: strict parsing reports syntax
// errors, completion parsing never fails and instead reports how far it
// got, for use by interactive completion.
package locspec
