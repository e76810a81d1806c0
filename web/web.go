// Package web bundles the server-rendered templates and static assets
// for the browser UI.
package web

import (
	"embed"
)

//go:embed templates/*.html static/*
var FS embed.FS
