package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/keyscreen/internal/input/keymap"
)

func TestParseFlagsOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "nothing set",
			args: nil,
			want: map[string]any{},
		},
		{
			name: "short forms",
			args: []string{"-p", "compact", "-s", "terminal"},
			want: map[string]any{"profile": "compact", "input.source": "terminal"},
		},
		{
			name: "replay implies source",
			args: []string{"--replay", "demo.keys", "--loop"},
			want: map[string]any{"input.source": "replay", "input.replay_file": "demo.keys", "input.loop": true},
		},
		{
			name: "explicit source wins over replay",
			args: []string{"--replay", "demo.keys", "--source", "evdev"},
			want: map[string]any{"input.source": "evdev", "input.replay_file": "demo.keys"},
		},
		{
			name: "display and log",
			args: []string{"--fps", "30", "--headless", "--log-level", "debug", "--log-file", "/tmp/k.log"},
			want: map[string]any{
				"display.fps":      int64(30),
				"display.headless": true,
				"log.level":        "debug",
				"log.file":         "/tmp/k.log",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if !reflect.DeepEqual(opts.Overrides, tt.want) {
				t.Errorf("Overrides = %v, want %v", opts.Overrides, tt.want)
			}
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid log level", []string{"--log-level", "loud"}, "invalid log level"},
		{"unknown profile", []string{"--profile", "dvorak"}, "unknown keymap profile"},
		{"positional args", []string{"file.txt"}, "unexpected arguments"},
		{"unknown flag", []string{"--nope"}, "not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("parseFlags() error = %v, want containing %q", err, tt.want)
			}
		})
	}

	_, err := parseFlags([]string{"--profile", "dvorak"}, &bytes.Buffer{})
	if !errors.Is(err, keymap.ErrUnknownProfile) {
		t.Errorf("parseFlags() error = %v, want ErrUnknownProfile", err)
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"-h"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !opts.showHelp {
		t.Error("showHelp should be set")
	}
	if !strings.Contains(stderr.String(), "Usage: keyscreen") {
		t.Errorf("usage output = %q", stderr.String())
	}
}

func TestListProfiles(t *testing.T) {
	var out bytes.Buffer
	listProfiles(&out)
	text := out.String()

	tests := []string{
		"  compact    Base glyphs only",
		"    capacity 16,",
		"    tiers: Base ",
		"* verbose    German QWERTZ",
		"    capacity 10,",
		", indicators\n",
		"    tiers: ShiftAlt 5 > Shift ",
		"    suppressed: Control+Equal\n",
	}
	for _, want := range tests {
		if !strings.Contains(text, want) {
			t.Errorf("listProfiles() missing %q in:\n%s", want, text)
		}
	}
	if strings.Count(text, "suppressed:") != 1 {
		t.Errorf("only the verbose profile has suppressions:\n%s", text)
	}
}
