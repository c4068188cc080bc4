package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnsureTree materializes the configured directory tree under the workspace
// root. Pre-existing directories are left untouched. The tree is only
// materialized once per run; composite actions share the first result.
func (r *Runner) EnsureTree(state *RunState) error {
	if state.treeDone {
		return nil
	}

	// Sort entries by path for stable, human-readable output
	names := make([]string, 0, len(r.cfg.Tree))
	for name := range r.cfg.Tree {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return r.cfg.Tree[names[i]] < r.cfg.Tree[names[j]]
	})

	for _, name := range names {
		rel := r.cfg.Tree[name]
		path := filepath.Join(r.root, rel)

		_, statErr := os.Stat(path)
		existed := statErr == nil

		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}

		state.Tree = append(state.Tree, TreeResult{
			Name:    name,
			Path:    path,
			Created: !existed,
		})

		if existed {
			r.pretty.Skip(fmt.Sprintf("[dir] exists %s", path))
			r.log.WithField("path", path).Debug("directory already present")
		} else {
			r.pretty.Success(fmt.Sprintf("[dir] %s", path))
			r.log.WithField("path", path).Info("created directory")
		}
	}

	state.treeDone = true
	return nil
}
