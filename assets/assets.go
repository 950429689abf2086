// Package assets embeds the level layouts shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed levels/*.json
var Levels embed.FS

// LevelFiles returns the embedded level paths in play order.
func LevelFiles() ([]string, error) {
	paths, err := fs.Glob(Levels, "levels/*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// LevelDocs reads every embedded level in play order.
func LevelDocs() ([][]byte, error) {
	paths, err := LevelFiles()
	if err != nil {
		return nil, err
	}
	docs := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := Levels.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		docs = append(docs, data)
	}
	return docs, nil
}
