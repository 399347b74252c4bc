// Package main provides a small command line tool which builds an ordered tree
// from its arguments (or from words read from stdin) and prints it.
//
// Usage:
//
//	ordtree [flags] [element ...]
//
// Elements are integers unless -strings is set.
package main

import (
	"bufio"
	"cmp"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/console"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	exitCode := run(os.Args, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

type options struct {
	capacity int
	build    bool
	dot      bool
	colors   bool
	width    int
}

// run executes the CLI and returns an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ordtree", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.IntVar(&opts.capacity, "capacity", 0, "Maximum number of elements per node (0 = default)")
	fs.BoolVar(&opts.build, "build", false, "Insert elements median-first instead of in given order")
	fs.BoolVar(&opts.dot, "dot", false, "Output the node structure in Graphviz DOT format")
	fs.BoolVar(&opts.colors, "color", false, "Color tree levels")
	fs.IntVar(&opts.width, "width", 0, "Line width for level output (0 = from terminal)")
	asStrings := fs.Bool("strings", false, "Treat elements as strings instead of integers")
	verbose := fs.Bool("v", false, "Trace at debug level")

	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	if opts.capacity < 0 {
		fmt.Fprintln(stderr, "Error: -capacity must not be negative")
		return 1
	}

	words := fs.Args()
	if len(words) == 0 && stdin != nil {
		var err error
		if words, err = readWords(stdin); err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 1
		}
	}

	var err error
	if *asStrings {
		err = report(words, opts, stdout)
	} else {
		var ints []int
		if ints, err = parseInts(words); err == nil {
			err = report(ints, opts, stdout)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}

func parseInts(words []string) ([]int, error) {
	ints := make([]int, len(words))
	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("element %q is not an integer", w)
		}
		ints[i] = n
	}
	return ints, nil
}

func report[T cmp.Ordered](elems []T, opts options, w io.Writer) error {
	set, err := buildSet(elems, opts)
	if err != nil {
		return err
	}
	ordtree.T().Debugf("built set of %d elements with height %d", set.Len(), set.Tree().Height())
	if opts.dot {
		ordtree.Dot(set, w)
		return nil
	}
	fmt.Fprintf(w, "in-order: %s\n", join(set.Items()))
	fmt.Fprintf(w, "reverse:  %s\n", join(set.Reversed()))
	fmt.Fprintf(w, "elements: %d, height: %d, fingerprint: %016x\n",
		set.Len(), set.Tree().Height(), set.Tree().Fingerprint())
	config := &console.Config{LineWidth: opts.width, Colors: opts.colors}
	if opts.width <= 0 {
		config.LineWidth = console.ConfigFromTerminal().LineWidth
	}
	return console.NewPrinter().Fprint(w, console.Levels(set.Tree()), config)
}

func buildSet[T cmp.Ordered](elems []T, opts options) (ordtree.Set[T], error) {
	if !opts.build {
		s, err := ordtree.NewSet[T](opts.capacity)
		if err != nil {
			return s, err
		}
		for _, e := range elems {
			s.Add(e)
		}
		return s, nil
	}
	b, err := ordtree.NewBuilder[T](opts.capacity)
	if err != nil {
		return ordtree.Set[T]{}, err
	}
	if err = b.Add(elems...); err != nil {
		return ordtree.Set[T]{}, err
	}
	return b.Set(), nil
}

func join[T any](seq iter.Seq[T]) string {
	var parts []string
	for e := range seq {
		parts = append(parts, fmt.Sprint(e))
	}
	return strings.Join(parts, " ")
}
