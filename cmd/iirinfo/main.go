// Command iirinfo prints the parameters, sections, poles/zeros and
// frequency response of the standard IIR designs.
//
// Usage:
//
//	iirinfo [flags] [design-name ...]
//
// Design names are matched case-insensitively; quote names with spaces.
//
// Examples:
//
//	iirinfo -list
//	iirinfo "Butterworth LowPass"
//	iirinfo -set "Order=4,Frequency=2kHz" -freqs 500,2000,8000 "Chebyshev I LowPass"
//	iirinfo -poles -set "RippleDB=0.5,StopDB=60" "Elliptic BandPass"
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func main() {
	list := flag.Bool("list", false, "list available design names")
	set := flag.String("set", "", "comma-separated Name=value parameter assignments, e.g. Order=4,Frequency=2kHz")
	freqs := flag.String("freqs", "100,1000,10000", "comma-separated analysis frequencies in Hz")
	poles := flag.Bool("poles", false, "print the pole/zero pairs of every section")
	coeffs := flag.Bool("coeffs", true, "print the section coefficients")
	verbose := flag.Bool("v", false, "log redesigns to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirinfo [flags] [design-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints parameters, sections, poles/zeros and response of IIR designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the parameter schema of every design.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -list\n")
		fmt.Fprintf(os.Stderr, "  iirinfo \"Butterworth LowPass\"\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -set \"Order=4,Frequency=2kHz\" \"Chebyshev I LowPass\"\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if flag.NArg() == 0 {
		if err := printSchemas(os.Stdout, iir.Designs()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	assignments, err := parseAssignments(*set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	hz, err := parseFrequencies(*freqs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var opts []iir.Option
	if *verbose {
		opts = append(opts, iir.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	report := reportOptions{freqs: hz, coeffs: *coeffs, poles: *poles}
	failed := false

	for _, name := range flag.Args() {
		d, ok := lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown design %q (use -list to see available)\n", name)
			failed = true

			continue
		}

		f, err := configure(d, assignments, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", d.Name(), err)
			failed = true

			continue
		}

		if err := printReport(os.Stdout, f, report); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, d := range iir.Designs() {
		fmt.Fprintln(w, d.Name())
	}
}

func lookup(name string) (iir.Design, bool) {
	name = strings.TrimSpace(name)
	if d, ok := iir.Lookup(name); ok {
		return d, true
	}

	for _, d := range iir.Designs() {
		if strings.EqualFold(d.Name(), name) {
			return d, true
		}
	}

	return nil, false
}
