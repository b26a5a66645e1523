package render

import (
	"slices"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// ItemKind says whether a legend entry describes a vertex fill or an edge stroke.
type ItemKind int

const (
	NodeItem ItemKind = iota
	EdgeItem
)

func (k ItemKind) String() string {
	if k == EdgeItem {
		return "edge"
	}

	return "node"
}

// LegendItem is one entry of an algorithm's colour key. Width is set for
// edge items only.
type LegendItem struct {
	ID    string
	Kind  ItemKind
	Color core.Color
	Label string
	Width float64
}

func node(id string, c core.Color, label string) LegendItem {
	return LegendItem{ID: id, Kind: NodeItem, Color: c, Label: label}
}

func edge(id string, c core.Color, label string, width float64) LegendItem {
	return LegendItem{ID: id, Kind: EdgeItem, Color: c, Label: label, Width: width}
}

var (
	commonNodes = []LegendItem{
		node("unvisited", core.ColorDefault, "Unvisited"),
		node("start", core.ColorGreen, "Start Node"),
	}
	commonEdges = []LegendItem{
		edge("default", core.ColorDefault, "Default Edge", core.WidthDefault),
	}
)

// Legend returns the colour key for a canonical algorithm name ("bfs",
// "dfs", "dijkstra", "bellman-ford", "astar", "prims", "kruskals"). Any other
// name gets the common entries only.
func Legend(algorithm string) []LegendItem {
	switch algorithm {
	case "bfs", "dfs":
		return slices.Concat(commonNodes, []LegendItem{
			node("visited", core.ColorBlue, "Visited"),
			node("queued", core.ColorAmber, "In Queue/Stack"),
			node("path", core.ColorPurple, "Final Path"),
		}, commonEdges, []LegendItem{
			edge("exploring", core.ColorOrange, "Exploring", core.WidthActive),
			edge("path-edge", core.ColorPurple, "Path Edge", core.WidthTree),
		})

	case "dijkstra", "bellman-ford":
		return slices.Concat(commonNodes, []LegendItem{
			node("end", core.ColorRed, "End Node"),
			node("current", core.ColorOrange, "Current Node"),
			node("updated", core.ColorBlue, "Distance Updated"),
			node("path", core.ColorPurple, "Shortest Path"),
		}, commonEdges, []LegendItem{
			edge("relaxing", core.ColorAmber, "Relaxing Edge", core.WidthActive),
			edge("path-edge", core.ColorPurple, "Shortest Path", core.WidthTree),
		})

	case "astar":
		return slices.Concat(commonNodes, []LegendItem{
			node("end", core.ColorRed, "Goal Node"),
			node("current", core.ColorOrange, "Current Node"),
			node("open", core.ColorBlue, "Open Set"),
			node("path", core.ColorPurple, "Optimal Path"),
		}, commonEdges, []LegendItem{
			edge("evaluating", core.ColorAmber, "Evaluating", core.WidthActive),
			edge("path-edge", core.ColorPurple, "Optimal Path", core.WidthTree),
		})

	case "prims":
		return slices.Concat(commonNodes, []LegendItem{
			node("mst-node", core.ColorBlue, "In MST"),
		}, commonEdges, []LegendItem{
			edge("mst-edge", core.ColorPurple, "MST Edge", core.WidthTree),
			edge("considering", core.ColorAmber, "Considering", core.WidthActive),
		})

	case "kruskals":
		return slices.Concat([]LegendItem{
			node("unvisited", core.ColorDefault, "Node"),
			node("mst-node", core.ColorBlue, "In MST"),
		}, commonEdges, []LegendItem{
			edge("examining", core.ColorAmber, "Examining", core.WidthActive),
			edge("mst-edge", core.ColorPurple, "MST Edge", core.WidthTree),
			edge("rejected", core.ColorRed, "Rejected (Cycle)", core.WidthDefault),
		})
	}

	return slices.Concat(commonNodes, commonEdges)
}
