package platform

// Package platform contains glue that does not depend on the UI toolkit:
// recognition of YouTube watch-page and short-link URLs and extraction of the
// video identifier they carry.
