package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/keyscreen/internal/config"
	"github.com/dshills/keyscreen/internal/hook"
	"github.com/dshills/keyscreen/internal/renderer"
)

// ErrDryRunSource is returned by DryRun for sources other than replay.
var ErrDryRunSource = errors.New("dry run needs the replay source")

// DryRun feeds the replay script straight through the engine without
// timing or a renderer. Each step prints its script line and the tokens
// it produced, followed by the final frame.
func (app *Application) DryRun(w io.Writer) error {
	r, ok := app.hook.(*hook.Replay)
	if !ok || app.config.Input.Source != config.SourceReplay {
		return ErrDryRunSource
	}

	for _, step := range r.Steps() {
		if len(step.Transitions) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d:", step.Line); err != nil {
			return err
		}
		for _, t := range step.Transitions {
			tok, ok := app.engine.Process(t)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, " %s", tok); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	f := app.engine.DrainFrame(app.queue)
	_, err := fmt.Fprintln(w, renderer.FormatFrame(f))
	return err
}
