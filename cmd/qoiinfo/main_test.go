package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/samcharles93/qoiinfo/internal/report"
)

func writeQOI(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	// Keep the user's real config file out of the way.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"qoiinfo"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

var scenarioA = []byte{0x71, 0x6F, 0x69, 0x66, 0, 0, 0, 0x0A, 0, 0, 0, 0x05, 0x04, 0x00}

func TestDescribeTextReport(t *testing.T) {
	path := writeQOI(t, t.TempDir(), "a.qoi", scenarioA)

	code, stdout, stderr := runCLI(t, path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr)
	}
	want := "File " + path + ":\n\tSize: 10x5\n\tChannels: RGBA\n\tColorspace: sRGB with linear alpha\n"
	if stdout != want {
		t.Fatalf("unexpected stdout:\ngot  %q\nwant %q", stdout, want)
	}
}

func TestDescribeJSONReport(t *testing.T) {
	path := writeQOI(t, t.TempDir(), "a.qoi", scenarioA)

	code, stdout, stderr := runCLI(t, "--format", "json", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr)
	}
	var got report.Summary
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode stdout %q: %v", stdout, err)
	}
	if got.File != path || got.Width != 10 || got.Height != 5 || got.ChannelsLabel != "RGBA" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestDescribeFailures(t *testing.T) {
	dir := t.TempDir()
	badMagic := writeQOI(t, dir, "bad.qoi", make([]byte, 14))
	badChannels := writeQOI(t, dir, "ch.qoi", []byte{'q', 'o', 'i', 'f', 0, 0, 0, 1, 0, 0, 0, 1, 5, 0xAA})
	badColorspace := writeQOI(t, dir, "cs.qoi", []byte{'q', 'o', 'i', 'f', 0, 0, 0, 1, 0, 0, 0, 1, 3, 2})
	short := writeQOI(t, dir, "short.qoi", []byte{'q', 'o', 'i', 'f', 0, 0})

	cases := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no arguments", nil, usageLine},
		{"too many arguments", []string{badMagic, badChannels}, "expected one input file, got 2"},
		{"missing file", []string{filepath.Join(dir, "missing.qoi")}, "ERROR open "},
		{"invalid magic", []string{badMagic}, "ERROR: not a valid QOI image"},
		{"unknown channels", []string{badChannels}, "ERROR: unknown channel format with 5 components"},
		{"unknown colorspace", []string{badColorspace}, "ERROR: unknown colorspace format 2"},
		{"truncated", []string{short}, "ERROR: qoi: read width"},
		{"unknown format", []string{"--format", "xml", badMagic}, "unknown report format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			if code == 0 {
				t.Fatalf("expected non-zero exit code")
			}
			if stdout != "" {
				t.Fatalf("expected empty stdout, got %q", stdout)
			}
			if !strings.Contains(stderr, tc.stderr) {
				t.Fatalf("expected %q in stderr, got %q", tc.stderr, stderr)
			}
		})
	}
}

func TestDescribeUsesConfigFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeQOI(t, dir, "a.qoi", scenarioA)
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("format: json\nlog_level: error\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, stdout, stderr := runCLI(t, "--config", cfgPath, path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr)
	}
	if !strings.HasPrefix(strings.TrimSpace(stdout), "{") {
		t.Fatalf("expected JSON from config format, got %q", stdout)
	}

	code, stdout, _ = runCLI(t, "--config", cfgPath, "--format", "text", path)
	if code != 0 || !strings.HasPrefix(stdout, "File ") {
		t.Fatalf("explicit --format should win over config, got code=%d stdout=%q", code, stdout)
	}
}

func TestDescribeMissingExplicitConfig(t *testing.T) {
	path := writeQOI(t, t.TempDir(), "a.qoi", scenarioA)
	code, _, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), path)
	if code == 0 || !strings.Contains(stderr, "read config") {
		t.Fatalf("expected config error, got code=%d stderr=%q", code, stderr)
	}
}

func TestDescribeDebugLogging(t *testing.T) {
	path := writeQOI(t, t.TempDir(), "a.qoi", scenarioA)
	code, _, stderr := runCLI(t, "--debug", "--log-format", "text", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr)
	}
	if !strings.Contains(stderr, "decoded header") || !strings.Contains(stderr, "width=10") {
		t.Fatalf("expected debug record on stderr, got %q", stderr)
	}
}

func TestResolveFormatAuto(t *testing.T) {
	prev := stdoutIsTerminal
	defer func() { stdoutIsTerminal = prev }()

	stdoutIsTerminal = func(io.Writer) bool { return true }
	if f, err := resolveFormat("auto", io.Discard); err != nil || f != report.FormatPretty {
		t.Fatalf("auto on terminal: got %q, %v", f, err)
	}
	stdoutIsTerminal = func(io.Writer) bool { return false }
	if f, err := resolveFormat("AUTO", io.Discard); err != nil || f != report.FormatText {
		t.Fatalf("auto off terminal: got %q, %v", f, err)
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "version:") {
		t.Fatalf("unexpected version output: %q", stdout)
	}
}
