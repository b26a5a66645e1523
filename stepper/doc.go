// Package stepper is the cooperative step protocol every animated algorithm
// runs under.
//
// What
//
//   - A run is an ordered sequence of steps. Each step does one bounded unit
//     of work (dequeue a vertex, relax an edge, union two components), then
//     publishes a narration line and the updated Scene, then suspends.
//   - At a suspension point the Controller's delay elapses, a paused run
//     holds (polling the pause flag), and cancellation is observed.
//   - After cancellation a Session emits nothing more; the algorithm returns
//     a StatusCancelled Outcome through Session.Stop.
//
// Determinism
//
//	Pausing only delays the next step. Steps are never skipped, reordered
//	or repeated across pause/resume, so a paused and an unpaused run of the
//	same input narrate identical sequences.
//
// Concurrency
//
//	A Session is confined to the goroutine running the algorithm. Only the
//	Controller is shared with the driver, and it is atomic.
//
// Usage
//
//	s, _ := stepper.NewSession(ctx, g,
//	    stepper.WithController(ctl),
//	    stepper.WithRenderer(r),
//	    stepper.WithNarrator(stepper.NarratorFunc(func(msg string) { fmt.Println(msg) })),
//	)
//	out, err := bfs.BFS(s, "A", bfs.WithTarget("F"))
package stepper
