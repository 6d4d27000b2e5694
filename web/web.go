// Package web holds the browser chat page served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// IndexHTML returns the chat page.
func IndexHTML() []byte {
	b, err := files.ReadFile("index.html")
	if err != nil {
		// embedded at build time, cannot be missing
		panic(err)
	}
	return b
}

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
