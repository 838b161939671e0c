// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import (
	"embed"
	"io/fs"
)

// dataFS embeds all JSON tables from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing the game tables.
func FS() fs.FS {
	return dataFS
}
