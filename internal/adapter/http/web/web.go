// Package web holds the embedded single-page UI.
package web

import (
	_ "embed"
)

// Index is the single page served at the root route
//
//go:embed static/index.html
var Index []byte
