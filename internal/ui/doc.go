package ui

// Package ui contains the Fyne-based desktop rendering of the downloader
// widget. It forwards user input to the download service and redraws from the
// snapshots the service publishes.
