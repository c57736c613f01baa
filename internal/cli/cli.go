package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fpgaflow/gp4synth/internal/app"
	"github.com/fpgaflow/gp4synth/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gp4synth", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { printUsage(output, flagSet) }

	topFlag := flagSet.String("top", "", "Top-level module name. Empty selects the top module automatically.")
	partFlag := flagSet.String("part", "", "Target part. One of SLG46140V, SLG46620V, SLG46621V (default SLG46621V).")
	jsonFlag := flagSet.String("json", "", "Write the final design to this JSON file. No file is written when empty.")
	runFlag := flagSet.String("run", "", "Only run the stages between <from>:<to>. An empty from label means the first stage; an empty to label means the end of the flow.")
	noFlattenFlag := flagSet.Bool("noflatten", false, "Do not flatten the design before synthesis.")
	retimeFlag := flagSet.Bool("retime", false, "Run 'abc' with the -dff option for retiming.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var runFrom, runTo string
	if *runFlag != "" {
		var err error
		runFrom, runTo, err = config.ParseRunRange(*runFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &app.Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Pipeline: config.Config{
			TopModule: *topFlag,
			Part:      *partFlag,
			RunFrom:   runFrom,
			RunTo:     runTo,
			Flatten:   !*noFlattenFlag,
			Retime:    *retimeFlag,
			JSONPath:  *jsonFlag,
		},
	}, false, nil
}

// printUsage writes the custom help text, including the stage reference the
// -run flag addresses.
func printUsage(output io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprint(output, `
gp4synth - staged synthesis flow driver for GreenPAK4 parts.

Usage:
  gp4synth [options]

Options:
`)
	flagSet.PrintDefaults()
	fmt.Fprint(output, `
Stages, in order (addressable with -run <from>:<to>):

  begin      read_verilog -lib +/greenpak4/cells_sim.v
             hierarchy -check [-top <top>]
  flatten    proc; flatten; tribuf -logic            (unless -noflatten)
  coarse     synth -run coarse
  fine       greenpak4_counters; clean; opt; memory_map; opt; techmap;
             dfflibmap -prepare; opt -fast; abc -dff (only with -retime)
  map_luts   nlutmap -luts <per-part budget>; clean
  map_cells  dfflibmap; techmap -map; dffinit per flip-flop type; clean
  check      hierarchy -check; stat; check -noinit
  json       splitnets; write_json <file>            (only with -json)
`)
}
