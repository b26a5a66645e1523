// Package visualizer is the driver behind every front-end: it owns the loaded
// graph, the scene, the pacing controller and at most one running algorithm.
//
// A typical session:
//
//	v := visualizer.New(visualizer.WithRenderer(r), visualizer.WithNarrator(n))
//	v.Load(text)                                  // parse, lay out, draw once
//	run, _ := v.Start(ctx, visualizer.Request{Algorithm: "dijkstra", Start: "A", End: "F"})
//	v.Pause(); v.Resume(); v.SetSpeed(8)          // from any goroutine
//	out, _ := run.Wait()
//
// Requests are validated before anything runs. Starting a new run first
// cancels the previous one and waits for it to stop, so two runs never share
// the scene.
package visualizer
