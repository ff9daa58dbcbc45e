// Package cmds implements the command tree of the gdbloc tool.
package cmds

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuman/binutils-gdb/pkg/config"
	"github.com/mmuman/binutils-gdb/pkg/locspec"
	"github.com/mmuman/binutils-gdb/pkg/logflags"
	"github.com/mmuman/binutils-gdb/pkg/version"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should
	// produce debug output.
	logOutput string

	// langName overrides the configured language rules.
	langName string
	// qualified makes function names match fully qualified names only.
	qualified bool
	// linespecStyle renders explicit locations in linespec form.
	linespecStyle bool
	// completion parses the input in completion mode.
	completion bool

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command

	conf *config.Config
)

const defaultParseCacheSize = 128

const gdblocLongDesc = `gdbloc parses event location strings, the specifications of where in a
debugged program a breakpoint or tracepoint should be anchored.

A location can be a linespec ("file.c:42", "main"), an address
("*0x4000"), a probe spec ("-probe provider:name"), or an explicit
location built from -source, -function, -qualified, -line and -label
options.`

// New returns an initialized command tree.
func New() *cobra.Command {
	conf = config.LoadConfig()

	rootCommand = &cobra.Command{
		Use:   "gdbloc",
		Short: "gdbloc parses debugger event location strings.",
		Long:  gdblocLongDesc,
	}

	rootCommand.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable debug logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (locspec, completion).")

	parseCommand := &cobra.Command{
		Use:   "parse [flags] [location]",
		Short: "Parse a location string and print its canonical form.",
		Long: `Parses a location string into a structured event location and prints its
kind, canonical form and fields. With no argument, locations are read
from standard input, one per line.`,
		RunE: parseCmd,
	}
	parseCommand.Flags().StringVar(&langName, "lang", "", "Language rules used while parsing (c, c++, ada).")
	parseCommand.Flags().BoolVar(&qualified, "qualified", false, "Match function names against fully qualified names only.")
	parseCommand.Flags().BoolVar(&linespecStyle, "linespec-style", false, "Render explicit locations in colon separated linespec form.")
	parseCommand.Flags().BoolVar(&completion, "completion", false, "Parse in completion mode: never fail, print completion markers.")
	rootCommand.AddCommand(parseCommand)

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gdbloc %s\n%s\n", version.GdblocVersion, version.BuildInfo())
		},
	}
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

func newParser() (*locspec.Parser, error) {
	name := langName
	if name == "" {
		name = conf.DefaultLanguage
	}
	p := &locspec.Parser{}
	if name != "" {
		lang := locspec.LanguageByName(name)
		if lang == nil {
			return nil, fmt.Errorf("unknown language %q", name)
		}
		p.Language = lang
	}
	return p, nil
}

func matchType() locspec.MatchType {
	if qualified || conf.QualifiedByDefault {
		return locspec.MatchFull
	}
	return locspec.MatchWild
}

func parseCmd(cmd *cobra.Command, args []string) error {
	if err := logflags.Setup(log, logOutput); err != nil {
		return err
	}

	parser, err := newParser()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return parseOne(parser, nil, strings.Join(args, " "))
	}

	// Interactive: parse each input line, caching repeated inputs.
	size := defaultParseCacheSize
	if conf.ParseCacheSize != nil {
		size = *conf.ParseCacheSize
	}
	cache, err := locspec.NewParseCache(parser, size)
	if err != nil {
		return err
	}
	scan := bufio.NewScanner(os.Stdin)
	for scan.Scan() {
		if err := parseOne(parser, cache, scan.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return scan.Err()
}

func parseOne(parser *locspec.Parser, cache *locspec.ParseCache, locStr string) error {
	if completion {
		loc, rest, info := parser.CompleteExplicit(locStr)
		printCompletion(loc, rest, info)
		return nil
	}

	var loc *locspec.Location
	var rest string
	var err error
	if cache != nil {
		loc, rest, err = cache.Parse(locStr, matchType())
	} else {
		loc, rest, err = parser.Parse(locStr, matchType())
	}
	if err != nil {
		return err
	}
	printLocation(loc, rest)
	return nil
}

func printLocation(loc *locspec.Location, rest string) {
	fmt.Printf("kind:      %s\n", loc.Kind())
	fmt.Printf("canonical: %s\n", loc.String())

	switch loc.Kind() {
	case locspec.KindLinespec:
		ls := loc.Linespec()
		fmt.Printf("spec:      %s\n", ls.Spec)
		fmt.Printf("match:     %s\n", ls.MatchType)
	case locspec.KindAddress:
		fmt.Printf("address:   %#x\n", loc.Address())
	case locspec.KindExplicit:
		printExplicit(loc.Explicit())
	case locspec.KindProbe:
		fmt.Printf("probe:     %s\n", loc.Probe())
	}

	if rest != "" {
		fmt.Printf("rest:      %s\n", rest)
	}
}

func printExplicit(e *locspec.ExplicitPayload) {
	if linespecStyle {
		fmt.Printf("linespec:  %s\n", e.ToLinespecString())
	}
	if e.SourceFilename != "" {
		fmt.Printf("source:    %s\n", e.SourceFilename)
	}
	if e.FunctionName != "" {
		fmt.Printf("function:  %s (match %s)\n", e.FunctionName, e.FuncMatchType)
	}
	if e.LabelName != "" {
		fmt.Printf("label:     %s\n", e.LabelName)
	}
	if e.LineOffset.Sign != locspec.OffsetUnknown {
		sign := ""
		switch e.LineOffset.Sign {
		case locspec.OffsetPlus:
			sign = "+"
		case locspec.OffsetMinus:
			sign = "-"
		}
		fmt.Printf("line:      %s%d\n", sign, e.LineOffset.Offset)
	}
}

func printCompletion(loc *locspec.Location, rest string, info *locspec.CompletionInfo) {
	if loc == nil {
		fmt.Println("not an explicit location")
		return
	}
	printLocation(loc, rest)
	fmt.Printf("last-option:         %d\n", info.LastOption)
	fmt.Printf("quoted-arg:          %d..%d\n", info.QuotedArgStart, info.QuotedArgEnd)
	fmt.Printf("saw-explicit-option: %v\n", info.SawExplicitOption)
}
