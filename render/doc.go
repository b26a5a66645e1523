// Package render turns a graph and its Scene into output. Every type here
// implements stepper.Renderer, so a Session can draw into any of them.
//
//   - Text prints one line per frame: every vertex as a coloured token,
//     optionally followed by the highlighted edges.
//   - WriteDOT renders a single frame as a Graphviz document, pinned to the
//     circular layout.
//   - Recorder keeps a snapshot of every frame together with the narration
//     that was current when it was drawn.
//
// Legend returns the colour key the original canvas showed next to each
// algorithm.
package render
