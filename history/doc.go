// Package history keeps a summary of finished solver runs in SQLite so runs
// over the same location set can be compared later.
//
// Only summaries are stored: configuration, best tour and fitness, the
// termination reason and timing. Populations are never persisted.
package history
