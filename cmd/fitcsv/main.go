// Command fitcsv fits a lineshape model to two-column CSV data.
//
// Usage:
//
//	fitcsv -model name [flags] file.csv
//
// The input file must carry at least two numeric columns; the x and y
// column indices are selectable. Rows are sorted by x before fitting.
//
// Examples:
//
//	fitcsv -model lorentzian scan.csv
//	fitcsv -model gaussian -from 4.2 -to 5.8 scan.csv
//	fitcsv -model polynomial -guess 0,0,0 calib.csv
//	fitcsv -model hanger -plot hanger.png s21.csv
//	fitcsv -list
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fit/dataset"
	"github.com/cwbudde/algo-fit/fit"
	"github.com/cwbudde/algo-fit/fitplot"
	"github.com/cwbudde/algo-fit/lsq"
)

type modelEntry struct {
	name       string
	fn         func(x, y []float64, opts ...fit.Option) (fit.Result, error)
	needsGuess bool
}

var registry = []modelEntry{
	{"lorentzian", fit.Lorentzian, false},
	{"double-lorentzian", fit.DoubleLorentzian, true},
	{"parabola", fit.Parabola, true},
	{"gaussian", fit.Gaussian, false},
	{"ngaussian", fit.NGaussian, true},
	{"exponential", fit.Exponential, false},
	{"pulse-error", fit.PulseError, false},
	{"sine", fit.Sine, false},
	{"decay-sine", fit.DecaySine, false},
	{"hanger", fit.Hanger, false},
	{"s11-one-port", fit.S11OnePort, false},
	{"s11-two-port", fit.S11TwoPort, false},
	{"kinetic-fraction", fit.KineticFraction, true},
	{"fano", fit.Fano, false},
	{"asym-lorentzian", fit.AsymLorentzian, false},
	{"polynomial", fit.Polynomial, true},
}

func main() {
	model := flag.String("model", "", "lineshape model to fit (use -list to see available)")
	guess := flag.String("guess", "", "comma-separated initial parameters")
	xcol := flag.Int("xcol", 0, "zero-based x column index")
	ycol := flag.Int("ycol", 1, "zero-based y column index")
	from := flag.Float64("from", math.NaN(), "lower domain bound")
	to := flag.Float64("to", math.NaN(), "upper domain bound")
	plotFile := flag.String("plot", "", "write a PNG of data and fit to this file")
	label := flag.String("label", "", "series label for the plot legend")
	list := flag.Bool("list", false, "list available model names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fitcsv -model name [flags] file.csv\n\n")
		fmt.Fprintf(os.Stderr, "Fits a lineshape model to two-column CSV data and prints the\n")
		fmt.Fprintf(os.Stderr, "best-fit parameters with their standard errors where available.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fitcsv -model lorentzian scan.csv\n")
		fmt.Fprintf(os.Stderr, "  fitcsv -model polynomial -guess 0,0,0 calib.csv\n")
		fmt.Fprintf(os.Stderr, "  fitcsv -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry, ok := lookup(*model)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown model %q (use -list to see available)\n", *model)
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	x, y, err := readColumns(flag.Arg(0), *xcol, *ycol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	dataset.ZipSort(x, y)

	opts := []fit.Option{fit.WithReporter(&fit.WriterReporter{W: os.Stdout})}

	if *guess != "" {
		g, err := parseGuess(*guess)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		opts = append(opts, fit.WithGuess(g))
	} else if entry.needsGuess {
		fmt.Fprintf(os.Stderr, "error: model %q requires -guess\n", entry.name)
		os.Exit(1)
	}

	if !math.IsNaN(*from) || !math.IsNaN(*to) {
		lo, hi := *from, *to
		if math.IsNaN(lo) {
			lo = math.Inf(-1)
		}
		if math.IsNaN(hi) {
			hi = math.Inf(1)
		}

		opts = append(opts, fit.WithDomain(lo, hi))
	}

	var canvas *fitplot.Plot
	if *plotFile != "" {
		canvas = fitplot.New(entry.name, "x", "y")
		opts = append(opts,
			fit.ShowFit(),
			fit.WithPlotter(canvas),
			fit.WithLabel(*label))
	}

	res, err := entry.fn(x, y, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: fit failed: %v\n", err)
		os.Exit(1)
	}

	if !res.Converged {
		fmt.Fprintf(os.Stderr, "warning: fit did not converge\n")
	}

	yfit := make([]float64, len(y))
	res.Curve.EvalSlice(yfit, x)
	fmt.Printf("r-squared : %.6f\n", lsq.RSquare(y, yfit))

	if canvas != nil {
		if err := canvas.Save(*plotFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func lookup(name string) (modelEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}

	return modelEntry{}, false
}

func parseGuess(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad guess element %q: %w", f, err)
		}

		out[i] = v
	}

	return out, nil
}

// readColumns loads the selected numeric columns, skipping rows whose
// cells do not parse (headers, units rows).
func readColumns(name string, xcol, ycol int) ([]float64, []float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var x, y []float64

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}

		if xcol >= len(rec) || ycol >= len(rec) {
			continue
		}

		xv, errx := strconv.ParseFloat(strings.TrimSpace(rec[xcol]), 64)
		yv, erry := strconv.ParseFloat(strings.TrimSpace(rec[ycol]), 64)
		if errx != nil || erry != nil {
			continue
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%s: no numeric rows in columns %d,%d", name, xcol, ycol)
	}

	return x, y, nil
}
