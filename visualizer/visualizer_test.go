package visualizer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/builder"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/render"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/visualizer"
)

func newVisualizer(t *testing.T, opts ...visualizer.Option) (*visualizer.Visualizer, *render.Recorder) {
	t.Helper()
	rec := render.NewRecorder()
	ctl := stepper.NewController(stepper.WithDelay(0), stepper.WithPollInterval(time.Millisecond))
	base := []visualizer.Option{
		visualizer.WithRenderer(rec),
		visualizer.WithNarrator(rec),
		visualizer.WithController(ctl),
	}

	return visualizer.New(append(base, opts...)...), rec
}

func loadSample(t *testing.T, v *visualizer.Visualizer, name string) {
	t.Helper()
	text, err := builder.Sample(name)
	require.NoError(t, err)
	_, err = v.Load(text)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	v, rec := newVisualizer(t)
	loadSample(t, v, builder.SampleSimple)

	assert.Equal(t, "Graph rendered with 6 nodes and 12 edges.", v.Narration())
	assert.Len(t, rec.Frames(), 1, "load draws once")
	assert.NotEqual(t, core.Point{}, v.Graph().Position("A"))

	rep, err := v.Load("A: [B]\nnot a line\n: [C]")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rep.Skipped)
	assert.Equal(t, "Graph rendered with 2 nodes and 1 edges.", v.Narration())

	_, err = v.Load("  \n ")
	assert.True(t, errors.Is(err, core.ErrEmptyInput))
	assert.Equal(t, 2, v.Graph().VertexCount(), "a failed load keeps the previous graph")
}

func TestLoadGraph(t *testing.T) {
	v, _ := newVisualizer(t)
	assert.True(t, errors.Is(v.LoadGraph(nil), visualizer.ErrNoGraph))

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))
	require.NoError(t, err)
	require.NoError(t, v.LoadGraph(g))
	assert.Equal(t, "Graph rendered with 5 nodes and 10 edges.", v.Narration())
}

func TestStart_Rejections(t *testing.T) {
	ctx := context.Background()
	empty, _ := newVisualizer(t)
	_, err := empty.Start(ctx, visualizer.Request{Algorithm: "bfs", Start: "A"})
	assert.True(t, errors.Is(err, visualizer.ErrNoGraph))

	v, _ := newVisualizer(t)
	loadSample(t, v, builder.SampleSimple)

	tests := []struct {
		name string
		req  visualizer.Request
		want error
	}{
		{"unknown algorithm", visualizer.Request{Algorithm: "floyd", Start: "A"}, visualizer.ErrUnknownAlgorithm},
		{"bfs without start", visualizer.Request{Algorithm: "bfs"}, visualizer.ErrStartRequired},
		{"blank start", visualizer.Request{Algorithm: "dfs", Start: "   "}, visualizer.ErrStartRequired},
		{"unknown start", visualizer.Request{Algorithm: "prims", Start: "Z"}, visualizer.ErrUnknownNode},
		{"dijkstra without end", visualizer.Request{Algorithm: "dijkstra", Start: "A"}, visualizer.ErrEndRequired},
		{"bellman-ford unknown end", visualizer.Request{Algorithm: "bellman-ford", Start: "A", End: "Q"}, visualizer.ErrUnknownNode},
		{"astar without end", visualizer.Request{Algorithm: "a*", Start: "A"}, visualizer.ErrEndRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Start(ctx, tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
	assert.False(t, v.Running())
}

func TestRun_IgnoredAndOptionalEndpoints(t *testing.T) {
	ctx := context.Background()
	v, _ := newVisualizer(t)
	loadSample(t, v, builder.SampleSimple)

	out, err := v.Run(ctx, visualizer.Request{Algorithm: "kruskal", Start: "nowhere", End: "nothing"})
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusMST, out.Status)

	out, err = v.Run(ctx, visualizer.Request{Algorithm: "Prim", Start: " A ", End: "nothing"})
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusMST, out.Status)
	assert.Len(t, out.Tree, 5)

	out, err = v.Run(ctx, visualizer.Request{Algorithm: "bfs", Start: "A", End: "nothing"})
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusNoPath, out.Status)
	assert.Equal(t, "BFS completed. Target node nothing not reachable from A.", v.Narration())
}

func TestRun_EveryAlgorithm(t *testing.T) {
	ctx := context.Background()
	v, rec := newVisualizer(t)
	loadSample(t, v, builder.SampleSimple)

	for _, alg := range visualizer.Algorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			rec.Clear()
			out, err := v.Run(ctx, visualizer.Request{Algorithm: alg.Name, Start: "A", End: "F"})
			require.NoError(t, err)
			assert.Equal(t, rec.Narrations()[len(rec.Narrations())-1], out.Narration)
			assert.Positive(t, out.Steps)

			switch alg.Name {
			case "prims", "kruskals":
				assert.Equal(t, stepper.StatusMST, out.Status)
				assert.Equal(t, 5.0, out.TotalWeight)
			default:
				require.Equal(t, stepper.StatusPathFound, out.Status)
				assert.Equal(t, "A", out.Path[0])
				assert.Equal(t, "F", out.Path[len(out.Path)-1])
			}
		})
	}
}

func TestReset_CancelsAndClears(t *testing.T) {
	v, rec := newVisualizer(t)
	loadSample(t, v, builder.SampleTree)
	v.SetDelay(time.Hour)

	r, err := v.Start(context.Background(), visualizer.Request{Algorithm: "dfs", Start: "root"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.Frames()) >= 2 }, time.Second, time.Millisecond)
	assert.True(t, v.Running())

	v.Reset()
	out, err := r.Wait()
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusCancelled, out.Status)
	assert.Equal(t, visualizer.ReadyMessage, v.Narration())
	assert.False(t, v.Scene().Touched())
	assert.False(t, v.Running())
	assert.False(t, v.Paused())
}

func TestStart_ReplacesRunningRun(t *testing.T) {
	v, rec := newVisualizer(t)
	loadSample(t, v, builder.SampleWeighted)
	v.SetDelay(time.Hour)

	first, err := v.Start(context.Background(), visualizer.Request{Algorithm: "bfs", Start: "1"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.Frames()) >= 2 }, time.Second, time.Millisecond)

	v.SetDelay(0)
	second, err := v.Start(context.Background(), visualizer.Request{Algorithm: "dijkstra", Start: "1", End: "8"})
	require.NoError(t, err)

	select {
	case <-first.Done():
	default:
		t.Fatal("the first run must have stopped before Start returned")
	}
	out, _ := first.Wait()
	assert.Equal(t, stepper.StatusCancelled, out.Status)

	out, err = second.Wait()
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusPathFound, out.Status)
	assert.Equal(t, 3.0, out.Cost)
	assert.Equal(t, "dijkstra", second.Algorithm())
}

func TestStart_ConcurrentCallersLeaveOneRun(t *testing.T) {
	for attempt := 0; attempt < 50; attempt++ {
		v, _ := newVisualizer(t)
		loadSample(t, v, builder.SampleWeighted)
		v.SetDelay(time.Hour)

		runs := make([]*visualizer.Run, 2)
		var wg sync.WaitGroup
		for i := range runs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := v.Start(context.Background(), visualizer.Request{Algorithm: "bfs", Start: "1"})
				assert.NoError(t, err)
				runs[i] = r
			}()
		}
		wg.Wait()

		live := 0
		for _, r := range runs {
			select {
			case <-r.Done():
			default:
				live++
			}
		}
		assert.Equal(t, 1, live, "attempt %d", attempt)

		v.Reset()
		for _, r := range runs {
			select {
			case <-r.Done():
			case <-time.After(time.Second):
				t.Fatalf("attempt %d: a run outlived Reset", attempt)
			}
		}
	}
}

func TestPause_HoldsTheRun(t *testing.T) {
	var v *visualizer.Visualizer
	paused := make(chan struct{})
	v, _ = newVisualizer(t, visualizer.WithNarrator(stepper.NarratorFunc(func(msg string) {
		if msg == "Step 1: Starting BFS from node A" {
			v.Pause()
			close(paused)
		}
	})))
	loadSample(t, v, builder.SampleSimple)

	r, err := v.Start(context.Background(), visualizer.Request{Algorithm: "bfs", Start: "A"})
	require.NoError(t, err)
	<-paused
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "Step 1: Starting BFS from node A", v.Narration())
	assert.True(t, v.Running())

	assert.False(t, v.TogglePause())
	out, err := r.Wait()
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusCompleted, out.Status)
	assert.Equal(t, 6, out.Visited)
}

func TestSpeed(t *testing.T) {
	v, _ := newVisualizer(t)
	require.NoError(t, v.SetSpeed(10))
	assert.Equal(t, 100*time.Millisecond, v.Controller().Delay())
	assert.True(t, errors.Is(v.SetSpeed(11), stepper.ErrSpeedOutOfRange))
}

func TestNodeInfo(t *testing.T) {
	v, _ := newVisualizer(t)
	_, err := v.NodeInfo("A")
	assert.True(t, errors.Is(err, visualizer.ErrNoGraph))

	_, err = v.Load("A: [B, C]\nC: []")
	require.NoError(t, err)

	info, err := v.NodeInfo("A")
	require.NoError(t, err)
	assert.Equal(t, "Node: A | Connections: B, C", info)
	assert.Equal(t, info, v.Narration())

	info, _ = v.NodeInfo("B")
	assert.Equal(t, "Node: B", info)
	info, _ = v.NodeInfo("C")
	assert.Equal(t, "Node: C | Connections: ", info)

	_, err = v.NodeInfo("D")
	assert.True(t, errors.Is(err, visualizer.ErrUnknownNode))
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]string{
		"bfs": "bfs", "DFS": "dfs", "A*": "astar", "astar": "astar",
		" prim ": "prims", "kruskal": "kruskals", "bellmanford": "bellman-ford",
	} {
		alg, ok := visualizer.Lookup(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, want, alg.Name)
		}
	}
	_, ok := visualizer.Lookup("floyd-warshall")
	assert.False(t, ok)

	algs := visualizer.Algorithms()
	require.Len(t, algs, 7)
	assert.Equal(t, visualizer.Ignored, algs[6].Start)
	assert.Equal(t, "optional", algs[0].End.String())
	algs[3].Aliases[0] = "changed"
	again, _ := visualizer.Lookup("bellmanford")
	assert.Equal(t, "bellman-ford", again.Name)
}
