package hook

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/keyscreen/internal/input/key"
)

// recordingSink collects pushed transitions.
type recordingSink struct {
	mu  sync.Mutex
	got []key.Transition
	err error
}

func (s *recordingSink) Push(t key.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, t)
	return nil
}

func (s *recordingSink) transitions() []key.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]key.Transition, len(s.got))
	copy(out, s.got)
	return out
}

// recordingLogger counts warnings.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

// step is a comparable view of a transition.
type step struct {
	key key.Key
	dir key.Direction
}

func steps(trs []key.Transition) []step {
	out := make([]step, len(trs))
	for i, t := range trs {
		out[i] = step{t.Key, t.Direction}
	}
	return out
}

func down(k key.Key) step { return step{k, key.Pressed} }
func up(k key.Key) step   { return step{k, key.Released} }

func assertSteps(t *testing.T, got []key.Transition, want []step) {
	t.Helper()
	gs := steps(got)
	if len(gs) != len(want) {
		t.Fatalf("got %d transitions %v, want %d %v", len(gs), gs, len(want), want)
	}
	for i := range want {
		if gs[i] != want[i] {
			t.Errorf("transition[%d] = %v, want %v", i, gs[i], want[i])
		}
	}
}

func TestInstallError(t *testing.T) {
	err := installError("evdev", ErrNoDevice)

	if !errors.Is(err, ErrHookInstall) {
		t.Error("installError should wrap ErrHookInstall")
	}
	if !errors.Is(err, ErrNoDevice) {
		t.Error("installError should wrap the cause")
	}
}

func TestDeliverLogsDroppedTransition(t *testing.T) {
	sink := &recordingSink{err: errors.New("closed")}
	log := &recordingLogger{}

	deliver(sink, key.Press(key.KeyA), log)

	if len(log.warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(log.warns))
	}
}

func TestReleaseAll(t *testing.T) {
	sink := &recordingSink{}
	o := applyOptions(nil)

	releaseAll(sink, o.modifierKeys, o.logger)

	assertSteps(t, sink.transitions(), []step{
		up(key.ControlLeft), up(key.ShiftLeft), up(key.AltGr), up(key.MetaLeft),
	})
}

func TestOptions(t *testing.T) {
	o := applyOptions([]Option{
		WithLogger(nil),
		WithModifierKeys(key.ShiftRight),
		WithLoop(true),
	})

	if _, ok := o.logger.(nopLogger); !ok {
		t.Error("WithLogger(nil) should keep the no-op logger")
	}
	if len(o.modifierKeys) != 1 || o.modifierKeys[0] != key.ShiftRight {
		t.Errorf("modifierKeys = %v, want [ShiftRight]", o.modifierKeys)
	}
	if !o.loop {
		t.Error("loop should be set")
	}

	o = applyOptions([]Option{WithModifierKeys()})
	if len(o.modifierKeys) != 4 {
		t.Errorf("empty WithModifierKeys should keep defaults, got %v", o.modifierKeys)
	}
}
