// Command qfinfo lists the quad filter types and prints magnitude
// responses measured from the running kernels.
//
// Usage:
//
//	qfinfo [flags] [filter ...]
//
// Without arguments it lists every type with its subtypes. Filters are
// given as type[:subtype][:ext] using the keys printed by -list.
//
// Examples:
//
//	qfinfo -list
//	qfinfo lp24db:0 lpladder:3
//	qfinfo -note 24 -reso 0.9 -points 48 lpvintageladder:2
//	qfinfo -csv comb+:1 > comb.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/cwbudde/algo-synthfilter/dsp/core"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad/response"
	"github.com/cwbudde/algo-synthfilter/internal/cli"
)

type options struct {
	note, reso float64
	lo, hi     float64
	points     int
	rate       float64
	fftSize    int
}

func main() {
	var opts options

	flag.Float64Var(&opts.note, "note", 12, "cutoff in semitones from A440")
	flag.Float64Var(&opts.reso, "reso", 0.5, "resonance in [0, 1]")
	flag.Float64Var(&opts.lo, "lo", 20, "lowest frequency in Hz")
	flag.Float64Var(&opts.hi, "hi", 20000, "highest frequency in Hz")
	flag.IntVar(&opts.points, "points", 24, "log-spaced frequencies per curve")
	flag.Float64Var(&opts.rate, "rate", 48000, "host sample rate in Hz")
	flag.IntVar(&opts.fftSize, "fft", 8192, "impulse response length (power of two)")
	list := flag.Bool("list", false, "list filter types and subtypes")
	asCSV := flag.Bool("csv", false, "write CSV even on a terminal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qfinfo [flags] [filter ...]\n\n")
		fmt.Fprintf(os.Stderr, "Lists quad filter types or prints measured magnitude responses in dB.\n")
		fmt.Fprintf(os.Stderr, "Filters are type[:subtype][:ext]; see -list for keys.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qfinfo -list\n")
		fmt.Fprintf(os.Stderr, "  qfinfo lp24db:0 lpladder:3\n")
		fmt.Fprintf(os.Stderr, "  qfinfo -note 24 -reso 0.9 lpvintageladder:2\n")
	}
	flag.Parse()

	tabular := !*asCSV && term.IsTerminal(int(os.Stdout.Fd()))

	var out table
	if *list || flag.NArg() == 0 {
		out = listTable()
	} else {
		var err error

		out, err = responseTable(flag.Args(), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := out.write(os.Stdout, tabular); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

type table struct {
	header []string
	rows   [][]string
}

func (t table) write(w io.Writer, tabular bool) error {
	if !tabular {
		cw := csv.NewWriter(w)
		if err := cw.Write(t.header); err != nil {
			return err
		}

		if err := cw.WriteAll(t.rows); err != nil {
			return err
		}

		return cw.Error()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	writeRow := func(cells []string) error {
		for i, c := range cells {
			sep := "\t"
			if i == len(cells)-1 {
				sep = "\n"
			}

			if _, err := fmt.Fprint(tw, c, sep); err != nil {
				return err
			}
		}

		return nil
	}

	if err := writeRow(t.header); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func listTable() table {
	t := table{header: []string{"Key", "Type", "Subtype", "Name"}}

	for _, typ := range quad.Types() {
		key := cli.Slug(typ.String())
		if typ.SubtypeCount() == 0 {
			t.rows = append(t.rows, []string{key, typ.String(), "-", "-"})
			continue
		}

		for sub := range typ.SubtypeCount() {
			t.rows = append(t.rows, []string{key, typ.String(), strconv.Itoa(sub), typ.SubtypeName(quad.Subtype(sub))})
		}
	}

	return t
}

func responseTable(keys []string, opts options) (table, error) {
	pc := core.ApplyProcessorOptions(core.WithSampleRate(opts.rate))

	t := table{header: []string{"Freq [Hz]"}}

	var curves [][]response.Point

	for _, key := range keys {
		typ, sub, err := cli.ParseFilter(key)
		if err != nil {
			return table{}, err
		}

		p, err := response.NewPlotter(typ, sub, opts.note, opts.reso,
			response.WithProcessorConfig(pc),
			response.WithFFTSize(opts.fftSize),
		)
		if err != nil {
			return table{}, err
		}

		label := typ.String()
		if name := typ.SubtypeName(sub); name != "" {
			label += " / " + name
		}

		t.header = append(t.header, label+" [dB]")
		curves = append(curves, p.Curve(opts.lo, opts.hi, opts.points))
	}

	if len(curves) == 0 || len(curves[0]) == 0 {
		return table{}, fmt.Errorf("empty frequency range %g..%g", opts.lo, opts.hi)
	}

	for i := range curves[0] {
		row := []string{strconv.FormatFloat(curves[0][i].Freq, 'f', 1, 64)}
		for _, c := range curves {
			row = append(row, strconv.FormatFloat(c[i].DB, 'f', 2, 64))
		}

		t.rows = append(t.rows, row)
	}

	return t, nil
}
