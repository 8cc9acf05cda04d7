package hook

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dshills/keyscreen/internal/input/key"
	"github.com/dshills/keyscreen/internal/input/keymap"
)

// Step is one parsed script line: transitions to push, then a pause.
type Step struct {
	Line        int
	Transitions []key.Transition
	Pause       time.Duration
}

// Replay plays a line-oriented script:
//
//	# comment
//	press ShiftLeft
//	tap KeyA            # press + release
//	release ShiftLeft
//	sleep 120ms
//	type hallo          # taps through the reverse keymap
type Replay struct {
	source string
	steps  []Step
	opts   options
}

// NewReplay parses a script from r. name labels errors.
func NewReplay(km *keymap.Keymap, name string, r io.Reader, opts ...Option) (*Replay, error) {
	steps, err := ParseScript(km, r)
	if err != nil {
		return nil, installError("replay", fmt.Errorf("%s: %w", name, err))
	}
	return &Replay{source: name, steps: steps, opts: applyOptions(opts)}, nil
}

// NewReplayFile parses the script at path.
func NewReplayFile(km *keymap.Keymap, path string, opts ...Option) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, installError("replay", err)
	}
	defer f.Close()
	return NewReplay(km, path, f, opts...)
}

// Name returns "replay".
func (h *Replay) Name() string {
	return "replay"
}

// Steps returns the parsed script.
func (h *Replay) Steps() []Step {
	return h.steps
}

// Start plays the script on its own goroutine.
func (h *Replay) Start(ctx context.Context, sink Sink) error {
	h.opts.logger.Info("replaying %s (%d steps, loop=%t)", h.source, len(h.steps), h.opts.loop)
	go h.run(ctx, sink)
	return nil
}

func (h *Replay) run(ctx context.Context, sink Sink) {
	for {
		if !h.play(ctx, sink) {
			return
		}
		if !h.opts.loop {
			h.opts.logger.Debug("replay of %s finished", h.source)
			return
		}
	}
}

// play runs the script once. It returns false when ctx is cancelled.
func (h *Replay) play(ctx context.Context, sink Sink) bool {
	for _, step := range h.steps {
		if ctx.Err() != nil {
			return false
		}
		for _, t := range step.Transitions {
			deliver(sink, t, h.opts.logger)
		}
		if step.Pause > 0 {
			timer := time.NewTimer(step.Pause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return false
			case <-timer.C:
			}
		}
	}
	// An empty looping script must not spin.
	if len(h.steps) == 0 {
		<-ctx.Done()
		return false
	}
	return ctx.Err() == nil
}

// ParseScript parses a replay script. Errors carry the line number and
// wrap ErrScript.
func ParseScript(km *keymap.Keymap, r io.Reader) ([]Step, error) {
	var reverse map[rune]keymap.Position

	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		verb := strings.ToLower(fields[0])
		args := fields[1:]
		step := Step{Line: lineNum}

		switch verb {
		case "press", "release", "tap":
			if len(args) == 0 {
				return nil, scriptError(lineNum, "%s needs a key", verb)
			}
			for _, arg := range args {
				k, err := key.Parse(arg)
				if err != nil {
					return nil, scriptError(lineNum, "%v", err)
				}
				switch verb {
				case "press":
					step.Transitions = append(step.Transitions, key.Press(k))
				case "release":
					step.Transitions = append(step.Transitions, key.Release(k))
				default:
					step.Transitions = append(step.Transitions, key.Press(k), key.Release(k))
				}
			}

		case "sleep":
			if len(args) != 1 {
				return nil, scriptError(lineNum, "sleep needs one duration")
			}
			d, err := time.ParseDuration(args[0])
			if err != nil || d < 0 {
				return nil, scriptError(lineNum, "bad duration %q", args[0])
			}
			step.Pause = d

		case "type":
			// Text is everything after the verb, inner spacing included.
			text := strings.TrimSpace(line)[len(fields[0]):]
			text = strings.TrimLeft(text, " \t")
			if text == "" {
				return nil, scriptError(lineNum, "type needs text")
			}
			if reverse == nil {
				reverse = km.Reverse()
			}
			for _, r := range text {
				pos, ok := lookupRune(reverse, r)
				if !ok {
					return nil, scriptError(lineNum, "no key produces %q in profile %s", r, km.Name())
				}
				step.Transitions = append(step.Transitions, chord(km, pos.Key, pos.Tier.Modifiers())...)
			}

		default:
			return nil, scriptError(lineNum, "unknown command %q", fields[0])
		}

		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	return steps, nil
}

func scriptError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrScript, line, fmt.Sprintf(format, args...))
}
