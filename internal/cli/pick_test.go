package cli

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPicks(t *testing.T) {
	names := []string{"Alice", "Bob", "Cara"}

	tests := []struct {
		name    string
		count   int
		remove  bool
		wantErr error
		lines   int
	}{
		{name: "single spin", count: 1, lines: 1},
		{name: "repeat winners allowed", count: 5, lines: 5},
		{name: "remove each winner", count: 3, remove: true, lines: 3},
		{name: "runs out of names", count: 4, remove: true, wantErr: wheel.ErrNoNames, lines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := wheel.DefaultOptions()
			opts.Rand = rand.New(rand.NewSource(42))

			var out bytes.Buffer
			err := runPicks(&out, names, opts, tt.count, tt.remove)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatal(err)
			}

			winners := strings.Fields(out.String())
			if len(winners) != tt.lines {
				t.Fatalf("expected %d winners, got %v", tt.lines, winners)
			}
			seen := map[string]bool{}
			for _, w := range winners {
				if w != "Alice" && w != "Bob" && w != "Cara" {
					t.Errorf("unexpected winner %q", w)
				}
				if tt.remove && seen[w] {
					t.Errorf("winner %q picked twice with --remove", w)
				}
				seen[w] = true
			}
		})
	}

	if len(names) != 3 {
		t.Errorf("caller's names were modified: %v", names)
	}
}

func TestRunPicksRejectsBadCount(t *testing.T) {
	opts := wheel.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))
	if err := runPicks(&bytes.Buffer{}, []string{"Alice"}, opts, 0, false); err == nil {
		t.Error("expected error for count 0")
	}
}

func TestPickCommandSingleName(t *testing.T) {
	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"pick", "--config", writeTestConfig(t), "--seed", "7", "Alice"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "Alice" {
		t.Errorf("got %q, want Alice", got)
	}
}

func TestPickCommandIsReproducibleWithSeed(t *testing.T) {
	run := func() string {
		cmd := NewRootCommand("dev", "none", "unknown")
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"pick", "--config", writeTestConfig(t), "--seed", "99", "--count", "4", "A", "B", "C", "D", "E"})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return out.String()
	}

	if first, second := run(), run(); first != second {
		t.Errorf("same seed gave different picks:\n%s\n%s", first, second)
	}
}

func TestPickCommandReadsNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("\nOnly\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"pick", "--config", writeTestConfig(t), "--names-file", path})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "Only" {
		t.Errorf("got %q, want Only", got)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Wheel Picker 1.2.3 (abc123) built on 2026-01-01") {
		t.Errorf("unexpected version output: %s", out.String())
	}
}
