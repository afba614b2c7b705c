package model

// Package model defines the widget's session state: the URL being edited,
// the download status, the display mode, and the bounded list of recent
// downloads. Renderers only ever see immutable Snapshots of it.
