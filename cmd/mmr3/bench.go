package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hupe1980/mmr3"
	"github.com/hupe1980/mmr3/codec"
	"github.com/hupe1980/mmr3/internal/cpuinfo"
	"github.com/hupe1980/mmr3/testutil"
	twmb "github.com/twmb/murmur3"
)

// benchRound is one key size and how many times it is hashed.
type benchRound struct {
	Label string
	Size  int
	Runs  int
}

var benchRounds = []benchRound{
	{"XS", 1, 1_000_000},
	{"S", 10, 1_000_000},
	{"M", 100, 100_000},
	{"L", 1000, 100_000},
	{"XL", 10000, 100_000},
}

type benchTask struct {
	name  string
	ours  func([]byte)
	other func([]byte)
}

var sink uint64

var benchTasks = []benchTask{
	{
		name:  "Hash32",
		ours:  func(k []byte) { sink += uint64(mmr3.Hash32(k, 0)) },
		other: func(k []byte) { sink += uint64(twmb.SeedSum32(0, k)) },
	},
	{
		name: "Hash128",
		ours: func(k []byte) {
			h := mmr3.Hash128(k, 0)
			sink += h.Lo ^ h.Hi
		},
		other: func(k []byte) {
			lo, hi := twmb.SeedSum128(0, 0, k)
			sink += lo ^ hi
		},
	},
}

// benchScore holds speed ratios (other time / our time) per round.
type benchScore struct {
	Item    string    `json:"item"`
	Ratios  []float64 `json:"ratios"`
	Average float64   `json:"average"`
	Faster  bool      `json:"faster"`
}

type benchReport struct {
	Date     string       `json:"date"`
	Platform cpuinfo.Info `json:"platform"`
	Modules  []string     `json:"modules,omitempty"`
	Rounds   []string     `json:"rounds"`
	Scores   []benchScore `json:"scores"`
	Wins     int          `json:"wins"`
}

func runBench(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("bench", e)
	scale := fs.Float64("scale", 1, "multiply the run count of every round")
	format := fs.String("format", "markdown", "output format: markdown or json")
	codecName := fs.String("codec", codec.Default.Name(), "JSON codec: json or go-json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scale <= 0 || math.IsNaN(*scale) || math.IsInf(*scale, 0) {
		return fmt.Errorf("invalid -scale: %v", *scale)
	}
	c, ok := codec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", *codecName)
	}
	if *format != "markdown" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}

	rounds := scaleRounds(benchRounds, *scale)
	rng := testutil.NewRNG(100)
	keys := make([][]byte, len(rounds))
	for i, r := range rounds {
		keys[i] = []byte(rng.ASCIIString(r.Size))
	}

	report := benchReport{
		Date:     time.Now().Format(time.DateTime),
		Platform: cpuinfo.Detect(),
		Modules:  moduleVersions(),
	}
	for _, r := range rounds {
		report.Rounds = append(report.Rounds, r.Label)
	}

	if *format == "markdown" {
		fmt.Fprintln(e.stdout, "Benchmarking...")
		fmt.Fprintln(e.stdout)
		writeBenchInfo(e.stdout, report)
	}

	for _, t := range benchTasks {
		s, err := scoreTask(ctx, t, rounds, keys)
		if err != nil {
			return err
		}
		report.Scores = append(report.Scores, s)
		if s.Faster {
			report.Wins++
		}
		runtime.GC()
	}

	if *format == "json" {
		b, err := c.Marshal(report)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(e.stdout, "%s\n", b)
		return err
	}

	fmt.Fprintln(e.stdout, "Result:")
	fmt.Fprintln(e.stdout)
	writeBenchTable(e.stdout, report.Rounds, report.Scores)
	fmt.Fprintln(e.stdout)
	fmt.Fprintf(e.stdout, "%d of %d tasks are faster!\n", report.Wins, len(report.Scores))
	return nil
}

func scaleRounds(rounds []benchRound, scale float64) []benchRound {
	out := make([]benchRound, len(rounds))
	for i, r := range rounds {
		r.Runs = max(1, int(float64(r.Runs)*scale))
		out[i] = r
	}
	return out
}

func scoreTask(ctx context.Context, t benchTask, rounds []benchRound, keys [][]byte) (benchScore, error) {
	s := benchScore{Item: t.name, Ratios: make([]float64, len(rounds))}
	var sum float64
	for i, r := range rounds {
		if err := ctx.Err(); err != nil {
			return benchScore{}, err
		}
		ours := timeRuns(t.ours, keys[i], r.Runs)
		other := timeRuns(t.other, keys[i], r.Runs)
		s.Ratios[i] = ratio(other, ours)
		sum += s.Ratios[i]
	}
	s.Average = round1(sum / float64(len(rounds)))
	s.Faster = s.Average > 1
	return s, nil
}

func timeRuns(fn func([]byte), key []byte, runs int) time.Duration {
	start := time.Now()
	for range runs {
		fn(key)
	}
	return time.Since(start)
}

func ratio(other, ours time.Duration) float64 {
	if ours <= 0 {
		ours = 1
	}
	return round1(float64(other) / float64(ours))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// moduleVersions lists this module and the comparison library as "path version".
func moduleVersions() []string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	out := []string{bi.Main.Path + " " + orUnknown(bi.Main.Version)}
	for _, d := range bi.Deps {
		if d.Path == "github.com/twmb/murmur3" {
			out = append(out, d.Path+" "+orUnknown(d.Version))
		}
	}
	return out
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func writeBenchInfo(w io.Writer, r benchReport) {
	line := strings.Repeat("*", 60)
	fmt.Fprintln(w, "Info:  ")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Date: %s  \n", r.Date)
	fmt.Fprintf(w, "System OS: %s/%s  \n", r.Platform.OS, r.Platform.Arch)
	fmt.Fprintf(w, "CPU: %s  \n", orUnknown(r.Platform.Model))
	fmt.Fprintf(w, "Go version: %s  \n", r.Platform.GoVersion)
	for _, m := range r.Modules {
		fmt.Fprintf(w, "Module: %s  \n", m)
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}

// writeBenchTable renders scores as a markdown table.
func writeBenchTable(w io.Writer, rounds []string, scores []benchScore) {
	header := append(append([]string{"Item"}, rounds...), "Average", "Faster")
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(4, len(h))
	}

	rows := make([][]string, len(scores))
	for i, s := range scores {
		row := []string{s.Item}
		for _, v := range s.Ratios {
			row = append(row, formatRatio(v))
		}
		faster := "N"
		if s.Faster {
			faster = "Y"
		}
		row = append(row, formatRatio(s.Average), faster)
		for j, cell := range row {
			widths[j] = max(widths[j], len(cell))
		}
		rows[i] = row
	}

	sep := make([]string, len(header))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n)
	}

	writeRow(w, header, widths)
	writeRow(w, sep, widths)
	for _, row := range rows {
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	b.WriteByte('|')
	for i, c := range cells {
		fmt.Fprintf(&b, " %-*s |", widths[i], c)
	}
	fmt.Fprintln(w, b.String())
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}
