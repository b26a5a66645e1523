package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/render"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/visualizer"
)

const defaultSpeed = 5

func NewRunCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "run <algorithm>"
	cmd.Aliases = []string{"r"}
	cmd.Short = "Animate an algorithm over a graph"
	cmd.Long = `Animate an algorithm over a graph, one frame and one narration line per step.

Algorithms: bfs, dfs, dijkstra, bellman-ford, astar, prims, kruskals.
With --interactive, type p (pause), r (resume), t (toggle), + (faster),
- (slower) or q (cancel) followed by Enter while the run is going.`
	cmd.Example = `  graphstep run bfs --sample simple --start A --end F
  graphstep run dijkstra -f graph.txt -s A -e D --weight A-B=4 --weight B-D=1
  graphstep run kruskals --generate complete:6 --max-weight 9 --dot mst.dot`
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v.Set("algorithm", args[0])
		return runRun(cmd, v, fs)
	}

	SetInputFlags(cmd)
	cmd.Flags().StringP("start", "s", "", "Start node")
	cmd.Flags().StringP("end", "e", "", "End node")
	cmd.Flags().Int("speed", -1, fmt.Sprintf("Speed level %d..%d (overrides --delay)", stepper.MinSpeed, stepper.MaxSpeed))
	cmd.Flags().Duration("delay", 500*time.Millisecond, "Delay between steps")
	cmd.Flags().Bool("interactive", false, "Read pause/resume/speed/quit commands from stdin")
	cmd.Flags().String("dot", "", "Write the final frame as Graphviz DOT to `path`")
	cmd.Flags().Bool("no-frames", false, "Print narration only")
	cmd.Flags().Float64("width", core.DefaultLayout().Width, "Canvas width used for the layout")
	cmd.Flags().Float64("height", core.DefaultLayout().Height, "Canvas height used for the layout")
	_ = cmd.MarkFlagFilename("dot", "dot", "gv")

	return cmd
}

func runRun(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	alg, ok := visualizer.Lookup(v.GetString("algorithm"))
	if !ok {
		return errors.Wrapf(visualizer.ErrUnknownAlgorithm, "%q", v.GetString("algorithm"))
	}
	g, _, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	layout := core.DefaultLayout()
	if w, h := v.GetFloat64("width"), v.GetFloat64("height"); w > 0 && h > 0 {
		layout.Width, layout.Height = w, h
	}

	opts := []visualizer.Option{
		visualizer.WithLayout(layout),
		visualizer.WithLogger(slog.Default()),
		visualizer.WithNarrator(stepper.NarratorFunc(func(msg string) {
			fmt.Fprintln(out, color.CyanString("» ")+msg)
		})),
	}
	if !v.GetBool("no-frames") {
		opts = append(opts, visualizer.WithRenderer(render.NewText(out, render.WithNoColor(color.NoColor))))
	}
	vis := visualizer.New(opts...)

	speed := defaultSpeed
	if level := v.GetInt("speed"); level >= 0 {
		if err := vis.SetSpeed(level); err != nil {
			return err
		}
		speed = level
	} else {
		vis.SetDelay(v.GetDuration("delay"))
	}

	if err := vis.LoadGraph(g); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	run, err := vis.Start(ctx, visualizer.Request{Algorithm: alg.Name, Start: v.GetString("start"), End: v.GetString("end")})
	if err != nil {
		return err
	}
	interactive := make(chan struct{})
	if v.GetBool("interactive") {
		go func() {
			defer close(interactive)
			interact(cmd.InOrStdin(), vis, run, speed)
		}()
	} else {
		close(interactive)
	}
	outcome, err := run.Wait()
	<-interactive
	if err != nil {
		return err
	}

	if path := v.GetString("dot"); path != "" {
		if err := writeDOT(fs, path, vis); err != nil {
			return err
		}
		slog.Info("wrote DOT", "path", path)
	}

	printOutcome(out, alg, outcome)

	return nil
}

// interact applies single-letter commands read from r until EOF or the end
// of the run, whichever comes first. It returns as soon as the run is done;
// a read already blocked on r is left to finish on its own and its line is
// dropped.
func interact(r io.Reader, vis *visualizer.Visualizer, run *visualizer.Run, speed int) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-run.Done():
				return
			}
		}
	}()

	for {
		var line string
		select {
		case <-run.Done():
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}
		switch strings.TrimSpace(line) {
		case "p":
			vis.Pause()
			slog.Info("paused")
		case "r":
			vis.Resume()
			slog.Info("resumed")
		case "t", "":
			slog.Info("toggled", "paused", vis.TogglePause())
		case "+":
			speed = min(speed+1, stepper.MaxSpeed)
			_ = vis.SetSpeed(speed)
			slog.Info("speed", "level", speed, "delay", vis.Controller().Delay())
		case "-":
			speed = max(speed-1, stepper.MinSpeed)
			_ = vis.SetSpeed(speed)
			slog.Info("speed", "level", speed, "delay", vis.Controller().Delay())
		case "q":
			run.Cancel()
			return
		default:
			slog.Warn("unknown command, want one of p r t + - q", "input", line)
		}
	}
}

func writeDOT(fs afero.Fs, path string, vis *visualizer.Visualizer) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return render.WriteDOT(f, vis.Graph(), vis.Scene())
}

func statusString(s stepper.Status) string {
	switch s {
	case stepper.StatusPathFound, stepper.StatusMST, stepper.StatusCompleted:
		return color.GreenString(s.String())
	case stepper.StatusNegativeCycle:
		return color.RedString(s.String())
	default:
		return color.YellowString(s.String())
	}
}

func printOutcome(w io.Writer, alg visualizer.Algorithm, o stepper.Outcome) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(alg.Title)
	t.AppendRow(table.Row{"Status", statusString(o.Status)})
	t.AppendRow(table.Row{"Steps", o.Steps})
	if o.Visited > 0 {
		t.AppendRow(table.Row{"Visited", o.Visited})
	}
	switch o.Status {
	case stepper.StatusPathFound:
		t.AppendRow(table.Row{"Path", strings.Join(o.Path, " -> ")})
		t.AppendRow(table.Row{"Cost", core.FormatWeight(o.Cost)})
	case stepper.StatusMST:
		tree := make([]string, len(o.Tree))
		for i, e := range o.Tree {
			tree[i] = fmt.Sprintf("%s-%s (%s)", e.From, e.To, core.FormatWeight(e.Weight))
		}
		t.AppendRow(table.Row{"Tree", strings.Join(tree, ", ")})
		t.AppendRow(table.Row{"Total weight", core.FormatWeight(o.TotalWeight)})
	}
	t.AppendRow(table.Row{"Narration", o.Narration})
	t.Render()
}
