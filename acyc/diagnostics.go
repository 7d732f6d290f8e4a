package acyc

import (
	"fmt"
	"os"
	"path/filepath"
)

// dump renders the break graph to "<DumpDir>/<run-id>.<stage>.svg" if a
// dump directory is configured, matching the six fixed diagnostic stages
// of spec.md §6. Rendering errors are logged, not propagated — a failed
// diagnostic dump must never fail the underlying acyclicity computation.
func (e *Engine) dump(stage DumpStage) {
	if e.cfg.DumpDir == "" {
		return
	}
	svg, err := e.bg.RenderSVG(string(stage))
	if err != nil {
		e.logger.Warnf("dump %s: render: %v", stage, err)
		return
	}
	path := filepath.Join(e.cfg.DumpDir, fmt.Sprintf("%s.%s.svg", e.runID, stage))
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		e.logger.Warnf("dump %s: write %s: %v", stage, path, err)
	}
}
