// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edgewater/fixwire/dict"
	"golang.org/x/term"
)

// Version, Branch, GitUrl, Sha are injected at build time via -ldflags
var (
	Version = "0.0.0"
	Branch  = "main"
	GitUrl  = "git@github.com:edgewater/fixwire.git"
	Sha     = "0000000"
)

// tagFlag supports an optional string arg; bare -tag lists all tags,
// explicit -tag= shows usage, and -tag=NN selects a tag.
type tagFlag struct {
	value string
	isSet bool
}

func (t *tagFlag) String() string     { return t.value }
func (t *tagFlag) Set(s string) error { t.value, t.isSet = s, true; return nil }
func (t *tagFlag) IsBoolFlag() bool   { return true }

type colourFlag struct {
	isSet bool
	value bool
}

func (c *colourFlag) String() string {
	if c.value {
		return "true"
	}
	return "false"
}

func (c *colourFlag) Set(s string) error {
	c.isSet = true
	switch strings.ToLower(s) {
	case "", "true", "yes":
		c.value = true
	case "false", "no":
		c.value = false
	default:
		return fmt.Errorf("invalid value for -colour: %q", s)
	}
	return nil
}

func (c *colourFlag) IsBoolFlag() bool {
	return true
}

// CLIOptions holds all parsed flag values.
type CLIOptions struct {
	DictPath  string
	Info      bool
	Tag       tagFlag
	Obfuscate bool
	Column    bool
	Colour    colourFlag
}

// parseFlagsArgs parses command-line arguments using a fresh FlagSet.
func parseFlagsArgs(args []string, errOut io.Writer) (CLIOptions, error) {
	var tag tagFlag
	var colour colourFlag

	fs := flag.NewFlagSet("fixcat", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dictPath := fs.String("dict", "", "Path to alternative QuickFIX-format XML dictionary")
	info := fs.Bool("info", false, "Show dictionary summary (version, field and message counts)")
	obfuscate := fs.Bool("obfuscate", false, "Replace sensitive tag values with stable aliases")
	column := fs.Bool("column", false, "Display tag listings in columns")
	fs.Var(&tag, "tag", "Tag number to display details for (omit to list all tags)")
	fs.Var(&colour, "colour", "Force coloured output (yes|no). Default: auto-detect based on stdout")

	fs.Usage = func() {
		PrintUsage(errOut)
		fmt.Fprintln(errOut, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return CLIOptions{}, err
	}

	return CLIOptions{
		DictPath:  *dictPath,
		Info:      *info,
		Tag:       tag,
		Obfuscate: *obfuscate,
		Column:    *column,
		Colour:    colour,
	}, nil
}

// PrintUsage prints the program usage.
func PrintUsage(out io.Writer) {
	fmt.Fprintf(out, "fixcat %s (branch:%s, commit:%s)\n\n", Version, Branch, Sha)
	fmt.Fprintf(out, "  git clone %s\n\n", GitUrl)
	fmt.Fprintln(out, "Usage: fixcat [-dict=FIX44.xml] [-obfuscate] [-colour=yes|no] [file1.log file2.log ...]")
	fmt.Fprintln(out, "       fixcat [-dict=FIX44.xml] [-tag[=NN] [-column]]")
	fmt.Fprintln(out, "       fixcat [-dict=FIX44.xml] [-info]")
}

// loadDictFromOpts picks between an explicit XML file or the embedded
// FIX 4.4 dictionary.
func loadDictFromOpts(opts CLIOptions) (*dict.Dictionary, error) {
	if opts.DictPath == "" {
		return dict.Default(), nil
	}

	f, err := os.Open(opts.DictPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := dict.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", opts.DictPath, err)
	}
	return d, nil
}

// extractFileArgsOrStdin returns all CLI elements that represent
// filenames (arguments that do NOT begin with '-').  A single dash is
// kept as a stdin placeholder.
func extractFileArgsOrStdin(args []string) []string {
	var files []string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") || a == "-" {
			files = append(files, a)
		}
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	return files
}

// Process is the entry point: parses flags, loads a dictionary, runs
// handlers, and returns an exit code.
func Process(args []string, out, errOut io.Writer) int {
	opts, err := parseFlagsArgs(args, errOut)
	if err != nil {
		return 1
	}

	d, err := loadDictFromOpts(opts)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	if !opts.Colour.isSet {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			dict.DisableColours()
		}
	} else if !opts.Colour.value {
		dict.DisableColours()
	}

	if runHandlers(opts, d, out) {
		return 0
	}

	obfuscator := dict.NewObfuscator(dict.SensitiveTags(), opts.Obfuscate)
	files := extractFileArgsOrStdin(args)
	return prettifyFiles(files, d, obfuscator, out, errOut)
}

func main() {
	os.Exit(Process(os.Args[1:], os.Stdout, os.Stderr))
}
