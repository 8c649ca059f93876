// Command hotspot is the CLI entry point: it wires configuration loading,
// file discovery, the analysis engine, and report rendering together.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hotspot-dev/hotspot/internal/config"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hotspot: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "hotspot [target]",
		Short: "Find refactoring hotspots across a polyglot codebase",
		Long: `hotspot walks a directory tree, parses every supported source file with
tree-sitter, computes structural metrics (size, cyclomatic complexity,
nesting depth, a composite complexity score), and flags files that cross
configurable thresholds as refactoring candidates.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.target = args[0]
			}
			return runAnalyze(cmd, opts)
		},
	}

	opts.bindFlags(cmd)
	return cmd
}

// runOptions holds every flag from spec section 6's CLI table, bound
// directly onto cobra flags the same way codefang's commands package does.
type runOptions struct {
	target string

	configPath string

	minLines int
	maxLines int

	languages        []string
	exclude          []string
	includeHidden    bool
	maxFileSizeMB    float64
	respectGitignore bool

	sort  string
	limit int

	maxComplexityScore  float64
	maxCC               int
	maxLOC              int
	maxFunctionsPerFile int

	onlyChangedSince string

	ci              bool
	ciMaxCandidates int

	format  string
	verbose bool
	quiet   bool
	noColor bool
	workers int
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&o.configPath, "config", "", "path to a .hotspot.yaml config file")

	flags.IntVar(&o.minLines, "min-lines", 0, "exclude files with fewer lines of code")
	flags.IntVar(&o.maxLines, "max-lines", 0, "exclude files with more lines of code (0 = no cap)")

	flags.StringSliceVar(&o.languages, "languages", nil, "restrict analysis to these languages (comma-separated)")
	flags.StringSliceVar(&o.exclude, "exclude", nil, "additional glob patterns to exclude")
	flags.BoolVar(&o.includeHidden, "include-hidden", false, "visit hidden files and directories")
	flags.Float64Var(&o.maxFileSizeMB, "max-file-size-mb", 10.0, "skip files larger than this many megabytes")
	flags.BoolVar(&o.respectGitignore, "respect-gitignore", true, "honor .gitignore / .ignore rules")

	flags.StringVar(&o.sort, "sort", "complexity", "terminal display order: lines, functions, methods, classes, complexity, cyclomatic, nesting, path")
	flags.IntVar(&o.limit, "limit", 0, "cap the number of rows shown in the terminal table (0 = unlimited)")

	flags.Float64Var(&o.maxComplexityScore, "max-complexity-score", 0, "override the complexity_score threshold (0 = use default/config)")
	flags.IntVar(&o.maxCC, "max-cc", 0, "override the cyclomatic complexity threshold (0 = use default/config)")
	flags.IntVar(&o.maxLOC, "max-loc", 0, "override the lines_of_code threshold (0 = use default/config)")
	flags.IntVar(&o.maxFunctionsPerFile, "max-functions-per-file", 0, "override the functions-per-file threshold (0 = use default/config)")

	flags.StringVar(&o.onlyChangedSince, "only-changed-since", "", "restrict analysis to files changed since this commit ref")

	flags.BoolVar(&o.ci, "ci", false, "exit 2 if the candidate count exceeds --ci-max-candidates")
	flags.IntVar(&o.ciMaxCandidates, "ci-max-candidates", 0, "candidate budget for --ci mode")

	flags.StringVarP(&o.format, "format", "f", "table", "output format: table, json, files, summary")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "expand per-file warnings in terminal output")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "suppress the progress bar")
	flags.BoolVar(&o.noColor, "no-color", false, "disable ANSI colors in terminal output")
	flags.IntVarP(&o.workers, "workers", "w", 0, "number of parser workers (0 = number of CPUs)")
}

// toConfig merges these flags on top of a loaded viper.Viper into the final
// effective config.Config, with flag values taking priority over the file
// and environment layers only when the user actually set them.
func (o *runOptions) toConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	set := func(name string, value any) {
		if cmd.Flags().Changed(name) {
			// Config keys use underscores (min_lines), flag names use hyphens.
			v.Set(strings.ReplaceAll(name, "-", "_"), value)
		}
	}
	if o.target != "" {
		v.Set("target", o.target)
	}
	set("min-lines", o.minLines)
	set("max-lines", o.maxLines)
	set("languages", o.languages)
	set("exclude", o.exclude)
	set("include-hidden", o.includeHidden)
	set("max-file-size-mb", o.maxFileSizeMB)
	set("respect-gitignore", o.respectGitignore)
	set("sort", o.sort)
	set("limit", o.limit)
	if o.maxComplexityScore > 0 {
		v.Set("max_complexity_score", o.maxComplexityScore)
	}
	if o.maxCC > 0 {
		v.Set("max_cc", o.maxCC)
	}
	if o.maxLOC > 0 {
		v.Set("max_loc", o.maxLOC)
	}
	if o.maxFunctionsPerFile > 0 {
		v.Set("max_functions_per_file", o.maxFunctionsPerFile)
	}
	set("only-changed-since", o.onlyChangedSince)
	set("ci", o.ci)
	set("ci-max-candidates", o.ciMaxCandidates)
	set("format", o.format)
	set("verbose", o.verbose)
	set("quiet", o.quiet)
	set("no-color", o.noColor)
	set("workers", o.workers)

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Target == "" {
		cfg.Target = "."
	}
	return cfg, nil
}

// exitCodeErr lets runAnalyze distinguish a CI-mode threshold breach (exit
// 2) from every other runtime error (exit 1), per spec section 6.
type exitCodeErr struct {
	code int
	err  error
}

func (e *exitCodeErr) Error() string { return e.err.Error() }
func (e *exitCodeErr) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if ec, ok := err.(*exitCodeErr); ok {
		return ec.code
	}
	return 1
}
