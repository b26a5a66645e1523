package visualizer

import (
	"slices"
	"strings"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/astar"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/bellmanford"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/bfs"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/dfs"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/dijkstra"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/prim_kruskal"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Endpoint says how an algorithm treats a request field.
type Endpoint int

const (
	Ignored Endpoint = iota
	Optional
	Required
)

func (e Endpoint) String() string {
	switch e {
	case Optional:
		return "optional"
	case Required:
		return "required"
	}

	return "-"
}

// Algorithm is one registry entry.
type Algorithm struct {
	// Name is the canonical key, also used by render.Legend.
	Name    string
	Title   string
	Aliases []string
	Start   Endpoint
	End     Endpoint

	run func(s *stepper.Session, start, end string) (stepper.Outcome, error)
}

var registry = []Algorithm{
	{
		Name: "bfs", Title: "Breadth-First Search",
		Start: Required, End: Optional,
		run: func(s *stepper.Session, start, end string) (stepper.Outcome, error) {
			return bfs.BFS(s, start, bfs.WithTarget(end))
		},
	},
	{
		Name: "dfs", Title: "Depth-First Search",
		Start: Required, End: Optional,
		run: func(s *stepper.Session, start, end string) (stepper.Outcome, error) {
			return dfs.DFS(s, start, dfs.WithTarget(end))
		},
	},
	{
		Name: "dijkstra", Title: "Dijkstra's Algorithm",
		Start: Required, End: Required,
		run: func(s *stepper.Session, start, end string) (stepper.Outcome, error) {
			return dijkstra.Dijkstra(s, dijkstra.Source(start), dijkstra.Target(end))
		},
	},
	{
		Name: "bellman-ford", Title: "Bellman-Ford", Aliases: []string{"bellmanford"},
		Start: Required, End: Required,
		run: func(s *stepper.Session, start, end string) (stepper.Outcome, error) {
			return bellmanford.BellmanFord(s, bellmanford.Source(start), bellmanford.Target(end))
		},
	},
	{
		Name: "astar", Title: "A* Search", Aliases: []string{"a*"},
		Start: Required, End: Required,
		run: func(s *stepper.Session, start, end string) (stepper.Outcome, error) {
			return astar.AStar(s, astar.Source(start), astar.Target(end))
		},
	},
	{
		Name: "prims", Title: "Prim's MST", Aliases: []string{"prim"},
		Start: Required, End: Ignored,
		run: func(s *stepper.Session, start, _ string) (stepper.Outcome, error) {
			return prim_kruskal.Prim(s, start)
		},
	},
	{
		Name: "kruskals", Title: "Kruskal's MST", Aliases: []string{"kruskal"},
		Start: Ignored, End: Ignored,
		run: func(s *stepper.Session, _, _ string) (stepper.Outcome, error) {
			return prim_kruskal.Kruskal(s)
		},
	},
}

// Algorithms lists the registry in menu order.
func Algorithms() []Algorithm {
	out := slices.Clone(registry)
	for i := range out {
		out[i].Aliases = slices.Clone(out[i].Aliases)
	}

	return out
}

// Lookup resolves a name or alias, ignoring case and surrounding space.
func Lookup(name string) (Algorithm, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range registry {
		if a.Name == key || slices.Contains(a.Aliases, key) {
			return a, true
		}
	}

	return Algorithm{}, false
}
