// Package web embeds the server-rendered HTML templates.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the embedded template filesystem, rooted at the
// directory containing the .html files.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic("web: failed to create template sub filesystem: " + err.Error())
	}
	return sub
}
