// Package ui holds the default web interface served when
// no assets directory is configured.
package ui

import "embed"

//go:embed index.html app.js style.css
var FS embed.FS
