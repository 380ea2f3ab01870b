// Package engine composes [irgraph.Graph], [segment.Segmenter], and
// [eval.Evaluator] behind a single facade, [Session], for controllers
// that want one owner for a huntflow's graph-build/segment/evaluate
// lifecycle instead of wiring the three packages together by hand.
//
// Every Session method returns the same plain error its underlying
// package call would return. In addition, errors in the taxonomy's
// "surface to caller" recovery class (spec.md §7) are appended to the
// Session's [diag.Collector], so a long-running controller can
// accumulate a human-inspectable issue log across many calls without
// aborting. Errors in the "fatal: indicates construction bug" class are
// returned but not collected — they are programmer errors, not
// conditions a controller recovers from by inspecting a log.
package engine
