// Command dftbench times the direct DFT across signal sizes.
//
// Usage:
//
//	dftbench [flags]
//
// It generates a deterministic multisine test signal per size, times
// repeated transforms, and prints per-size timing statistics. Results can
// additionally be written to a JSON file for plotting.
//
// Examples:
//
//	dftbench
//	dftbench -sizes 128,256,512,1024
//	dftbench -freqs 1000:1,2000:0.5,3000:0.25 -runs 10
//	dftbench -workers 1 -json results.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sab-ene1/DFT-Tool/dsp/core"
	"github.com/sab-ene1/DFT-Tool/dsp/dft"
	"github.com/sab-ene1/DFT-Tool/dsp/signal"
	timestats "github.com/sab-ene1/DFT-Tool/stats/time"
)

type sizeResult struct {
	Size          int     `json:"size"`
	Runs          int     `json:"runs"`
	MeanSeconds   float64 `json:"mean_seconds"`
	StdDevSeconds float64 `json:"stddev_seconds"`
	MinSeconds    float64 `json:"min_seconds"`
}

type benchReport struct {
	SampleRate float64      `json:"sample_rate"`
	Workers    int          `json:"workers"`
	Results    []sizeResult `json:"results"`
}

func main() {
	sizes := flag.String("sizes", "128,256,512,1024,2048,4096", "comma-separated signal sizes")
	freqs := flag.String("freqs", "1000:1,2000:0.5,3000:0.25", "multisine components as freqHz:amplitude pairs")
	rate := flag.Float64("rate", 48000, "sample rate in Hz for the test signal")
	runs := flag.Int("runs", 5, "timed transform runs per size")
	workers := flag.Int("workers", 0, "worker goroutines for the per-bin loop (0 = all CPUs)")
	jsonPath := flag.String("json", "", "write results to this JSON file")
	showStats := flag.Bool("stats", false, "print time-domain statistics of each test signal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dftbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times the direct O(N^2) DFT across signal sizes.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		fatalf("invalid -sizes: %v", err)
	}

	components, err := parseComponents(*freqs)
	if err != nil {
		fatalf("invalid -freqs: %v", err)
	}

	if *runs < 1 {
		fatalf("-runs must be >= 1: %d", *runs)
	}

	gen := signal.NewGenerator(core.WithSampleRate(*rate))

	var opts []dft.Option
	if *workers > 0 {
		opts = append(opts, dft.WithWorkers(*workers))
	}
	p := dft.NewProcessor(opts...)

	report := benchReport{
		SampleRate: *rate,
		Workers:    p.Workers(),
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tRUNS\tMEAN\tSTDDEV\tMIN")

	for _, size := range sizeList {
		sig, err := gen.Multisine(components, size)
		if err != nil {
			fatalf("generate size %d: %v", size, err)
		}

		if *showStats {
			s := timestats.Calculate(sig)
			fmt.Fprintf(os.Stderr, "size %d: rms=%.4f peak=%.4f power=%.2fdB dc=%.2e crossings=%d\n",
				size, s.RMS, s.Peak, core.LinearPowerToDB(s.Power), s.DC, s.ZeroCrossings)
		}

		// Warm-up run so twiddle allocation doesn't skew the first sample.
		_ = p.ComputeDFT(sig)

		seconds := make([]float64, *runs)
		for i := range seconds {
			start := time.Now()
			_ = p.ComputeDFT(sig)
			seconds[i] = time.Since(start).Seconds()
		}

		res := summarize(size, seconds)
		report.Results = append(report.Results, res)

		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			res.Size, res.Runs,
			formatSeconds(res.MeanSeconds),
			formatSeconds(res.StdDevSeconds),
			formatSeconds(res.MinSeconds))
	}
	w.Flush()

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, report); err != nil {
			fatalf("write %s: %v", *jsonPath, err)
		}
		fmt.Fprintf(os.Stderr, "results written to %s\n", *jsonPath)
	}
}

func summarize(size int, seconds []float64) sizeResult {
	minSec := seconds[0]
	for _, s := range seconds[1:] {
		if s < minSec {
			minSec = s
		}
	}

	mean, std := stat.MeanStdDev(seconds, nil)
	if len(seconds) < 2 {
		std = 0
	}

	return sizeResult{
		Size:          size,
		Runs:          len(seconds),
		MeanSeconds:   mean,
		StdDevSeconds: std,
		MinSeconds:    minSec,
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("size must be >= 1: %d", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

func parseComponents(s string) ([]signal.Component, error) {
	parts := strings.Split(s, ",")
	out := make([]signal.Component, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		freqStr, ampStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("component %q must be freqHz:amplitude", part)
		}
		freq, err := strconv.ParseFloat(freqStr, 64)
		if err != nil {
			return nil, err
		}
		amp, err := strconv.ParseFloat(ampStr, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, signal.Component{FreqHz: freq, Amplitude: amp})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no components given")
	}
	return out, nil
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}

func writeJSON(path string, report benchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "dftbench: "+format+"\n", args...)
	os.Exit(1)
}
