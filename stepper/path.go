package stepper

import (
	"slices"
	"strings"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// CostMode selects how a traced path is measured and narrated.
type CostMode int

const (
	// Hops measures a path by its edge count ("Length").
	Hops CostMode = iota
	// Distance measures a path by its summed edge weight ("Total distance").
	Distance
)

// Reconstruct walks parent links back from end. It fails when the walk stops
// anywhere but start, which is what a partially populated map from a
// cancelled or exhausted run looks like, or when it loops.
//
//	Reconstruct({B:A, C:B}, "A", "C") == [A B C], true
func Reconstruct(parent map[string]string, start, end string) ([]string, bool) {
	seen := make(map[string]bool, len(parent)+1)
	path := []string{}
	for cur, ok := end, true; ok; cur, ok = parent[cur] {
		if seen[cur] {
			return nil, false
		}
		seen[cur] = true
		path = append(path, cur)
	}
	slices.Reverse(path)
	if path[0] != start {
		return nil, false
	}

	return path, true
}

// PathCost sums the weights of consecutive edges along path.
func PathCost(g *core.Graph, path []string) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.Weight(path[i-1], path[i])
	}

	return total
}

// TracePath reconstructs the start→end path from parent and animates it,
// one frame per vertex, coloring vertices and edges purple.
func (s *Session) TracePath(parent map[string]string, start, end string, mode CostMode) (Outcome, error) {
	path, ok := Reconstruct(parent, start, end)
	if !ok {
		s.Narrate("No path found from " + start + " to " + end)
		return s.Finish(Outcome{Status: StatusNoPath}), nil
	}

	for i, id := range path {
		s.scene.SetNodeColor(id, core.ColorPurple)
		if i > 0 {
			s.scene.SetEdgeStyle(path[i-1], id, core.ColorPurple, core.WidthTree)
		}
		if err := s.Frame(); err != nil {
			return s.Stop(err)
		}
	}

	joined := strings.Join(path, " -> ")
	o := Outcome{Status: StatusPathFound, Path: path}
	switch mode {
	case Distance:
		o.Cost = PathCost(s.graph, path)
		s.Narrate("Shortest path: " + joined + " (Total distance: " + core.FormatWeight(o.Cost) + ")")
	default:
		o.Cost = float64(len(path) - 1)
		s.Narrate("Path found: " + joined + " (Length: " + core.FormatWeight(o.Cost) + ")")
	}

	return s.Finish(o), nil
}
