// Package data bundles the default glossary sources into the binary.
package data

import (
	"embed"
	"io/fs"
	"strings"
)

// Dir is the directory the default sources are listed under
const Dir = "data"

//go:embed *.json
var files embed.FS

// FS serves the bundled sources under Dir, so "data/sound.json" opens the
// embedded sound.json
var FS fs.FS = dirFS{files}

type dirFS struct {
	fsys fs.FS
}

func (d dirFS) Open(name string) (fs.File, error) {
	rest, ok := strings.CutPrefix(name, Dir+"/")
	if !ok || !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return d.fsys.Open(rest)
}
