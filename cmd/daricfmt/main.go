// Package main is the entry point for the daricfmt tool: a formatter and
// renumberer for line-numbered BASIC-family source files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/command"
	"github.com/dshills/daricfmt/internal/config"
	"github.com/dshills/daricfmt/internal/engine/buffer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	list        bool
	write       bool
	diff        bool
	renum       bool
	start       int
	increment   int
	configPath  string
	dialectPath string
	verbose     bool
	showVersion bool
}

func parseFlags() (options, []string) {
	var o options
	flag.BoolVar(&o.list, "l", false, "list files whose formatting differs")
	flag.BoolVar(&o.write, "w", false, "write result back to source file instead of stdout")
	flag.BoolVar(&o.diff, "d", false, "display diffs instead of rewriting files")
	flag.BoolVar(&o.renum, "renum", false, "renumber lines before formatting")
	flag.IntVar(&o.start, "start", 0, "first new line number for -renum (0 = keep first existing)")
	flag.IntVar(&o.increment, "inc", 0, "line number increment for -renum (0 = configured default)")
	flag.StringVar(&o.configPath, "config", "", "settings file (TOML or YAML)")
	flag.StringVar(&o.dialectPath, "dialect", "", "dialect file (TOML or YAML)")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return o, flag.Args()
}

func run() int {
	opts, paths := parseFlags()

	if opts.showVersion {
		fmt.Printf("daricfmt %s (%s)\n", version, commit)
		return 0
	}

	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	dialectCfg, err := config.LoadDialect(opts.dialectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Debug().Str("dialect", dialectCfg.Name()).Int("indent", settings.IndentOffset).Msg("configuration loaded")

	if len(paths) == 0 {
		return processStdin(opts, settings, dialectCfg)
	}

	exit := 0
	for _, path := range paths {
		if err := processFile(path, opts, settings, dialectCfg, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			exit = 1
		}
	}
	return exit
}

func processStdin(opts options, settings config.Settings, d *dialect.Config) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
		return 1
	}
	out, _, err := transform(string(data), opts, settings, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.diff {
		printDiff("<stdin>", string(data), out)
		return 0
	}
	fmt.Print(out)
	return 0
}

func processFile(path string, opts options, settings config.Settings, d *dialect.Config, log zerolog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	in := string(data)
	out, changed, err := transform(in, opts, settings, d)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Bool("changed", changed).Msg("processed")

	switch {
	case opts.list:
		if changed {
			fmt.Println(path)
		}
	case opts.diff:
		if changed {
			printDiff(path, in, out)
		}
	case opts.write:
		if !changed {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(out), info.Mode().Perm())
	default:
		fmt.Print(out)
	}
	return nil
}

// transform runs the configured commands over text and returns the
// result plus whether it differs from the input.
func transform(text string, opts options, settings config.Settings, d *dialect.Config) (string, bool, error) {
	buf := buffer.NewFromString(text)
	ctx := command.NewContext(buf)
	ctx.Settings = settings
	ctx.Dialect = d

	if opts.renum {
		if res := command.Renumber(ctx, opts.start, opts.increment, nil); res.IsError() {
			return "", false, res.Err
		}
	}
	if res := command.Format(ctx, nil); res.IsError() {
		return "", false, res.Err
	}

	out := buf.Text()
	return out, out != text, nil
}

func printDiff(path, before, after string) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: diff: %v\n", err)
		return
	}
	fmt.Print(text)
}
