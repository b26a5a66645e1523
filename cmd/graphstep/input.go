package main

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/builder"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// SetInputFlags adds the flags that choose the graph a command works on.
func SetInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read the adjacency list from `path` (\"-\" for stdin)")
	cmd.Flags().String("sample", "", "Use a bundled sample {simple|weighted|tree}")
	cmd.Flags().String("generate", "", "Generate a graph: `kind:size` with kind in {path|cycle|star|wheel|complete} or grid:RxC")
	cmd.Flags().Int64("seed", 1, "Seed for generated weights")
	cmd.Flags().Int("max-weight", 1, "Draw generated weights uniformly from 1..`n`")
	cmd.Flags().StringArray("weight", []string{}, "Set an edge weight as `A-B=w` (repeatable)")
	_ = cmd.MarkFlagFilename("file")
}

// loadGraph builds the graph selected by the input flags. Without any of
// --file, --sample or --generate the "simple" sample is used.
func loadGraph(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) (*core.Graph, core.ParseReport, error) {
	file, sample, generate := v.GetString("file"), v.GetString("sample"), v.GetString("generate")

	given := mapset.NewThreadUnsafeSet[string]()
	for name, val := range map[string]string{"--file": file, "--sample": sample, "--generate": generate} {
		if val != "" {
			given.Add(name)
		}
	}
	if given.Cardinality() > 1 {
		return nil, core.ParseReport{}, errors.Newf("only one graph source may be given, got %s", strings.Join(mapset.Sorted(given), ", "))
	}

	var (
		g   *core.Graph
		rep core.ParseReport
		err error
	)
	switch {
	case generate != "":
		g, err = generateGraph(generate, v.GetInt64("seed"), v.GetInt("max-weight"))
	case file != "":
		var text string
		if text, err = readInput(cmd, fs, file); err == nil {
			g, rep, err = core.ParseString(text)
		}
	default:
		if sample == "" {
			sample = builder.SampleSimple
		}
		var text string
		if text, err = builder.Sample(sample); err == nil {
			g, rep, err = core.ParseString(text)
		}
	}
	if err != nil {
		return nil, rep, err
	}
	if len(rep.Skipped) > 0 {
		slog.Warn("skipped malformed lines", "lines", rep.Skipped)
	}

	if err = applyWeights(g, v.GetStringSlice("weight")); err != nil {
		return nil, rep, err
	}

	return g, rep, nil
}

func readInput(cmd *cobra.Command, fs afero.Fs, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), errors.Wrap(err, "read stdin")
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}

	return string(b), nil
}

var generators = map[string]func(n int) builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"star":     builder.Star,
	"wheel":    builder.Wheel,
	"complete": builder.Complete,
}

// generateGraph parses "kind:n" or "grid:RxC" and builds it with
// spreadsheet-column vertex names.
func generateGraph(spec string, seed int64, maxWeight int) (*core.Graph, error) {
	kind, size, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	if !ok {
		return nil, errors.Newf("generate: %q is not kind:size", spec)
	}

	var ctor builder.Constructor
	if kind == "grid" {
		rs, cs, ok := strings.Cut(size, "x")
		rows, errR := strconv.Atoi(rs)
		cols, errC := strconv.Atoi(cs)
		if !ok || errR != nil || errC != nil {
			return nil, errors.Newf("generate: grid size %q is not RxC", size)
		}
		ctor = builder.Grid(rows, cols)
	} else {
		gen, found := generators[kind]
		if !found {
			kinds := mapset.NewThreadUnsafeSet[string]("grid")
			for k := range generators {
				kinds.Add(k)
			}
			return nil, errors.Newf("generate: unknown kind %q, want one of %s", kind, strings.Join(mapset.Sorted(kinds), ", "))
		}
		n, err := strconv.Atoi(size)
		if err != nil {
			return nil, errors.Wrapf(err, "generate: size %q", size)
		}
		ctor = gen(n)
	}

	opts := []builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn), builder.WithSeed(seed)}
	if maxWeight > 1 {
		opts = append(opts, builder.WithWeightFn(builder.IntWeightFn(1, maxWeight)))
	}

	return builder.BuildGraph(opts, ctor)
}

// parseWeight reads "A-B=3.5".
func parseWeight(s string) (string, string, float64, error) {
	pair, ws, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", 0, errors.Newf("weight %q: want A-B=w", s)
	}
	from, to, ok := strings.Cut(pair, "-")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return "", "", 0, errors.Newf("weight %q: want A-B=w", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil {
		return "", "", 0, errors.Wrapf(err, "weight %q", s)
	}

	return from, to, w, nil
}

func applyWeights(g *core.Graph, specs []string) error {
	seen := mapset.NewThreadUnsafeSet[[2]string]()
	for _, spec := range specs {
		from, to, w, err := parseWeight(spec)
		if err != nil {
			return err
		}
		if err = g.SetWeight(from, to, w); err != nil {
			return errors.Wrapf(err, "weight %q", spec)
		}
		k := [2]string{from, to}
		if to < from {
			k = [2]string{to, from}
		}
		if !seen.Add(k) {
			slog.Warn("edge weight set more than once; the last value wins", "edge", from+"-"+to)
		}
	}

	return nil
}
