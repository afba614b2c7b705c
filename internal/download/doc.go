package download

// Package download implements the widget's download trigger. The Service
// guards against re-entrant triggers, drives the session through its
// processing and final states, and clears the status line after a delay.
// The only Fetcher shipped is Simulator, which waits and always succeeds.
