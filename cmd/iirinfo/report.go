package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

type reportOptions struct {
	freqs  []float64
	coeffs bool
	poles  bool
}

type assignment struct {
	name  string
	value string
}

// parseAssignments splits "Name=value,Name=value". Values are parsed
// against the design schema later, so units such as "2kHz" stay intact.
func parseAssignments(s string) ([]assignment, error) {
	var out []assignment

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, value, ok := strings.Cut(field, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("assignment %q is not Name=value", field)
		}

		out = append(out, assignment{name: strings.TrimSpace(name), value: strings.TrimSpace(value)})
	}

	return out, nil
}

func parseFrequencies(s string) ([]float64, error) {
	var out []float64

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		hz, err := strconv.ParseFloat(field, 64)
		if err != nil || hz <= 0 || math.IsInf(hz, 0) {
			return nil, fmt.Errorf("frequency %q must be a positive number of Hz", field)
		}

		out = append(out, hz)
	}

	return out, nil
}

// configure creates an analysis-only filter for d and applies the
// assignments with a single redesign.
func configure(d iir.Design, assignments []assignment, opts ...iir.Option) (*iir.Filter, error) {
	f, err := iir.New(d, 0, opts...)
	if err != nil {
		return nil, err
	}

	if len(assignments) == 0 {
		return f, nil
	}

	p := f.Params()

	for _, a := range assignments {
		i := slotByName(f, a.name)
		if i < 0 {
			return nil, fmt.Errorf("%w: no parameter %q", iir.ErrInvalidConfig, a.name)
		}

		v, err := f.ParamInfo(i).Parse(a.value)
		if err != nil {
			return nil, err
		}

		p[i] = v
	}

	if err := f.SetParams(p); err != nil {
		return nil, err
	}

	return f, nil
}

func slotByName(f *iir.Filter, name string) int {
	for i := range f.NumParams() {
		if strings.EqualFold(f.ParamInfo(i).Name, name) {
			return i
		}
	}

	return -1
}

func printSchemas(w io.Writer, designs []iir.Design) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Design\tSlot\tName\tDefault\tMin\tMax\tCurve\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "------\t----\t----\t-------\t---\t---\t-----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, d := range designs {
		for i, info := range d.ParamInfos() {
			label := ""
			if i == 0 {
				label = d.Name()
			}

			if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%v\n",
				label, i, info.Name,
				info.Format(info.Default), info.Format(info.Min), info.Format(info.Max),
				info.Mapping,
			); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func printReport(w io.Writer, f *iir.Filter, opts reportOptions) error {
	c := f.Cascade()

	if _, err := fmt.Fprintf(w, "%s (%v): order %d, %d sections\n", f.Name(), f.Kind(), c.Order(), c.NumSections()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i := range f.NumParams() {
		info := f.ParamInfo(i)
		fmt.Fprintf(tw, "  %s\t%s\n", info.Label, info.Format(f.Param(i)))
	}

	if opts.coeffs {
		fmt.Fprintf(tw, "\n  Section\tb0\tb1\tb2\ta1\ta2\n")

		for i, s := range c.Sections() {
			fmt.Fprintf(tw, "  %d\t%.10g\t%.10g\t%.10g\t%.10g\t%.10g\n", i, s.B0, s.B1, s.B2, s.A1, s.A2)
		}
	}

	if opts.poles {
		fmt.Fprintf(tw, "\n  Section\tPoles\tZeros\n")

		for i, pz := range f.PoleZeros() {
			n := 2
			if pz.Single {
				n = 1
			}

			fmt.Fprintf(tw, "  %d\t%s\t%s\n", i, formatRoots(pz.Poles[:n]), formatRoots(pz.Zeros[:n]))
		}
	}

	if len(opts.freqs) > 0 {
		fmt.Fprintf(tw, "\n  Frequency\tMagnitude\tPhase\n")

		sampleRate := sampleRateOf(f)
		for _, hz := range opts.freqs {
			h := f.Response(hz / sampleRate)
			if cmplx.IsNaN(h) {
				fmt.Fprintf(tw, "  %.1f Hz\tn/a\tn/a\n", hz)
				continue
			}

			fmt.Fprintf(tw, "  %.1f Hz\t%.3f dB\t%.4f rad\n", hz, 20*math.Log10(cmplx.Abs(h)), cmplx.Phase(h))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	_, err := fmt.Fprintln(w)

	return err
}

// sampleRateOf returns the design sample rate, or 1 for the custom
// designs whose frequencies are already normalized.
func sampleRateOf(f *iir.Filter) float64 {
	if i := f.FindParamID(param.SampleRate); i >= 0 {
		return f.Param(i)
	}

	return 1
}

func formatRoots(roots []complex128) string {
	parts := make([]string, len(roots))
	for i, r := range roots {
		if cmplx.IsInf(r) {
			parts[i] = "∞"
			continue
		}

		parts[i] = fmt.Sprintf("%.6f%+.6fi", real(r), imag(r))
	}

	return strings.Join(parts, " ")
}
