// Package cmd implements the finc command line application: financial
// calculators, loan schedules and investment appraisal.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finmath/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to a YAML or TOML configuration file.")
	currency   = flag.String("currency", "", "Currency of the amounts (ISO 4217). Overrides the configuration.")
	logLevel   = flag.String("log-level", "warn", "Log level: debug, info, warn, error.")
	rawOutput  = flag.Bool("markdown", false, "Print the raw markdown report instead of rendering it.")
	jsonOutput = flag.Bool("json", false, "Print the report data as JSON instead of markdown.")
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// group is a set of subcommands shown together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

func groups() []group {
	return []group{
		{"calculators", []subcommands.Command{&ratesCmd{}, &tvmCmd{}, &annuityCmd{}}},
		{"loans", []subcommands.Command{&loanCmd{}, &batchCmd{}}},
		{"investments", []subcommands.Command{&appraiseCmd{}, &sensitivityCmd{}, &monteCarloCmd{}}},
		{"documentation", []subcommands.Command{&topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Commands returns every finc subcommand.
func Commands() []subcommands.Command {
	var all []subcommands.Command
	for _, g := range groups() {
		all = append(all, g.commands...)
	}
	return all
}

// env is what every command needs once the global flags are parsed.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	currency string
}

// newEnv loads the configuration selected by the global flags.
func newEnv() (*env, error) {
	e := &env{log: newLogger(*logLevel)}
	if *configFile == "" {
		e.cfg = config.Default()
	} else {
		cfg, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		e.cfg = cfg
		e.log.Debug().Str("path", *configFile).Str("format", config.DetectFormat(*configFile).String()).Msg("configuration loaded")
	}
	e.currency = e.cfg.Report.Currency
	if *currency != "" {
		e.currency = strings.ToUpper(*currency)
	}
	return e, nil
}

// fail logs err and returns the failure status.
func (e *env) fail(err error, msg string) subcommands.ExitStatus {
	e.log.Error().Err(err).Msg(msg)
	return subcommands.ExitFailure
}

// isSet reports whether the flag name was given on the command line.
func isSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// printMarkdown renders md for the terminal, or prints it as is with -markdown.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintln(os.Stderr, "cannot render markdown:", err)
	fmt.Fprint(stdout, md)
}

// printReport prints data as JSON with -json, or the markdown render returns.
func printReport(data any, render func() string) subcommands.ExitStatus {
	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintln(os.Stderr, "cannot encode the report:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(render())
	return subcommands.ExitSuccess
}

var errNoFlows = errors.New("no cash flow: use -flows or -file")
