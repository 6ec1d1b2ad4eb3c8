// Package stats records finished game sessions and analyzes them. It
// owns the session record shape, the JSON file persistence with its
// history cap and top-ranked high-score fold, the live-session
// Recorder, and the summary and progress-report aggregations served by
// the HTTP API and the analyze command.
package stats
