package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/vecmath/internal/config"
)

func runCmd(t *testing.T, precision int, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Precision = precision
	cfg.Interp.Steps = 2

	var buf bytes.Buffer
	err := run(&buf, args, cfg)
	return buf.String(), err
}

func TestRunOutputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"angles up", []string{"angles", "0", "0", "5"}, []string{"yaw     0", "pitch   90", "angles  -90 0 0"}},
		{"angles down", []string{"angles", "0", "0", "-5"}, []string{"pitch   270", "angles  -270 0 0"}},
		{"polar", []string{"polar", "0", "0", "2"}, []string{"polar   2 0 -90"}},
		{"frame", []string{"frame", "1", "0", "0"}, []string{"forward 1 0 0", "left    0 1 0", "up      0 0 1"}},
		{"normal", []string{"normal", "0", "3", "4"}, []string{"normal  0 0.6 0.8"}},
		{"mask", []string{"mask", "-2", "0", "7"}, []string{"mask    33 (100001)"}},
		{"unmask", []string{"unmask", "33"}, []string{"vector  -1 0 1"}},
		{"lerp", []string{"lerp", "0", "0", "0", "2", "4", "6"}, []string{"0       0 0 0", "0.5     1 2 3", "1       2 4 6"}},
		{"slerp", []string{"slerp", "2", "0", "0", "0", "3", "0"}, []string{"0       1 0 0", "0.5     0.707 0.707 0", "1       0 1 0"}},
		{"sphere", []string{"sphere", "0", "0", "2"}, []string{"point   0 0 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, 3, tt.args...)
			if err != nil {
				t.Fatalf("run(%v) error: %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want+"\n") {
					t.Errorf("run(%v) output missing %q:\n%s", tt.args, want, out)
				}
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown", []string{"rotate", "1"}},
		{"too few", []string{"angles", "1", "2"}},
		{"too many", []string{"unmask", "1", "2"}},
		{"not a number", []string{"normal", "1", "x", "3"}},
		{"invalid mask", []string{"unmask", "3"}},
		{"mask out of range", []string{"unmask", "64"}},
		{"fractional mask", []string{"unmask", "1.5"}},
		{"zero slerp", []string{"slerp", "0", "0", "0", "1", "0", "0"}},
		{"bad radius", []string{"sphere", "1", "1", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, 2, tt.args...)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("run(%v) = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}

func TestMaskRoundTripThroughCLI(t *testing.T) {
	out, err := runCmd(t, 0, "mask", "0.5", "-3", "0")
	if err != nil {
		t.Fatal(err)
	}
	// x positive (bit 1), y negative (bit 2)
	if !strings.Contains(out, "mask    6 (000110)") {
		t.Fatalf("unexpected mask output: %s", out)
	}

	out, err = runCmd(t, 0, "unmask", "6")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "vector  1 -1 0") {
		t.Errorf("unexpected unmask output: %s", out)
	}
}
