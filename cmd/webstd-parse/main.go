package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opal-lang/webstd/datetime"
)

type parseFn func(string) (fmt.Stringer, error)

func wrap[T fmt.Stringer](parse func(string) (T, error)) parseFn {
	return func(s string) (fmt.Stringer, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// formats maps the --format flag values to format-specific entry points.
// The empty default auto-detects.
var formats = map[string]parseFn{
	"year":            wrap(datetime.ParseYear),
	"month":           wrap(datetime.ParseMonth),
	"date":            wrap(datetime.ParseDate),
	"yearless-date":   wrap(datetime.ParseYearlessDate),
	"time":            wrap(datetime.ParseTime),
	"local-datetime":  wrap(datetime.ParseLocalDateTime),
	"global-datetime": wrap(datetime.ParseGlobalDateTime),
	"week":            wrap(datetime.ParseWeek),
	"timezone-offset": wrap(datetime.ParseTimeZoneOffset),
}

func newRootCommand() *cobra.Command {
	var formatName string
	var debug bool

	cmd := &cobra.Command{
		Use:   "webstd-parse [--format <name>] <literal>",
		Short: "Parse an HTML date/time microsyntax literal",
		Long: "webstd-parse validates a date/time literal against the WHATWG HTML\n" +
			"microsyntax grammars and prints the structured result. Without --format\n" +
			"the grammar is auto-detected.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if debug {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

			return run(logger, formatName, args[0])
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "parse as a specific format instead of auto-detecting")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func run(logger *slog.Logger, formatName, literal string) error {
	start := time.Now()

	var v fmt.Stringer
	var detected string
	var err error

	if formatName == "" {
		logger.Debug("auto-detecting format", "input", literal)
		var value datetime.Value
		value, err = datetime.Parse(literal)
		if err == nil {
			v = value
			detected = value.Format().String()
		}
	} else {
		parse, ok := formats[formatName]
		if !ok {
			return fmt.Errorf("unknown format %q (valid: year, month, date, yearless-date, time, local-datetime, global-datetime, week, timezone-offset)", formatName)
		}
		logger.Debug("parsing", "format", formatName, "input", literal)
		v, err = parse(literal)
		detected = formatName
	}

	logger.Debug("parse finished", "elapsed", time.Since(start))

	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "invalid")
		return err
	}

	color.New(color.FgGreen, color.Bold).Println("valid")
	fmt.Printf("format:    %s\n", detected)
	fmt.Printf("canonical: %s\n", v)
	if g, ok := v.(datetime.GlobalDateTime); ok {
		fmt.Printf("utc:       %s\n", g.UTC().Format(time.RFC3339Nano))
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
