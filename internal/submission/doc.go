// Package submission sequences one age submission from the form to its
// results.
//
// A Controller owns a three-state machine (Form, Loading, Results). Submit
// computes the human age synchronously and moves to Loading; the single
// fact fetch that follows is applied through Resolve, which only accepts
// outcomes carrying the current generation. Reset and new submissions bump
// the generation, so a late fetch can never overwrite newer state.
//
// Start bundles Submit, the fetch goroutine and Resolve for callers that
// just want a channel of the final View.
package submission
