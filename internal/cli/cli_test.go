package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benetherington/anvil-runtime/internal/prompt"
	"github.com/benetherington/anvil-runtime/pkg/schema"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
	"github.com/benetherington/anvil-runtime/pkg/styles"
)

const fontType = "plotly.graph_objs.layout.polar.radialaxis.title.Font"

type scriptedDriver struct {
	inputs []string
	pos    int
}

func (s *scriptedDriver) Text(_ context.Context, _ prompt.Question) (string, error) {
	if s.pos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.pos]
	s.pos++
	return val, nil
}

func (s *scriptedDriver) Confirm(_ context.Context, q prompt.Question) (bool, error) {
	def, _ := q.Default.(bool)
	return def, nil
}

func (s *scriptedDriver) Choose(_ context.Context, _ prompt.Question) (string, error) {
	return "", nil
}

func run(t *testing.T, stdin string, driver prompt.Driver, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), args, Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Driver: driver,
	})
	return stdout.String(), stderr.String(), err
}

func decodeEnvelope(t *testing.T, raw string) serializable.Envelope {
	t.Helper()
	env, err := serializable.ParseEnvelope([]byte(raw))
	if err != nil {
		t.Fatalf("parse output envelope: %v\n%s", err, raw)
	}
	return env
}

func TestRun_List(t *testing.T) {
	out, _, err := run(t, "", nil, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != fontType+"\n" {
		t.Fatalf("unexpected list output: %q", out)
	}
}

func TestRun_Describe(t *testing.T) {
	out, _, err := run(t, "", nil, "describe", fontType)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, want := range []string{
		fontType,
		"Sets this axis' title font.",
		"size (number) min=1 default=12",
		"style (enumerated) values=normal|italic",
		`family (string) required-text default="Open Sans", verdana, arial, sans-serif`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("describe output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := run(t, "", nil, "describe"); err == nil {
		t.Fatalf("expected usage error without type name")
	}
	if _, _, err := run(t, "", nil, "describe", "a.b.Missing"); !errors.Is(err, serializable.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRun_NewWithDefaults(t *testing.T) {
	out, _, err := run(t, "", nil, "new", fontType, "-no-prompt")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	env := decodeEnvelope(t, out)
	if env.Type != fontType {
		t.Fatalf("unexpected envelope type %q", env.Type)
	}
	want := map[string]any{
		"color":  "#444",
		"family": `"Open Sans", verdana, arial, sans-serif`,
		"size":   12.0,
	}
	if diff := cmp.Diff(want, env.Value); diff != "" {
		t.Fatalf("envelope value mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_NewWithThemeFile(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	manifest := "name: paper\nversion: 1.0.0\ntokens:\n  font.family: Georgia, serif\n  font.size: \"15\"\nvariants:\n  print:\n    tokens:\n      font.color: Black\n"
	if err := os.WriteFile(themePath, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	out, _, err := run(t, "", nil, "new", fontType, "-no-prompt", "-theme-file", themePath, "-variant", "print")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := map[string]any{
		"color":  "black",
		"family": "Georgia, serif",
		"size":   15.0,
	}
	if diff := cmp.Diff(want, decodeEnvelope(t, out).Value); diff != "" {
		t.Fatalf("envelope value mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_NewFlagsBeforeType(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "ink.json")
	manifest := `{"name":"ink","version":"2.0.0","tokens":{"font.color":"Navy"}}`
	if err := os.WriteFile(themePath, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	out, _, err := run(t, "", nil, "new", "-no-prompt", "-theme-file", themePath, fontType, "-theme", "ink")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := decodeEnvelope(t, out).Value["color"]; got != "navy" {
		t.Fatalf("expected theme color, got %v", got)
	}
}

func TestRun_NewUnknownVariant(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "ink.json")
	if err := os.WriteFile(themePath, []byte(`{"name":"ink","version":"1.0.0"}`), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	if _, _, err := run(t, "", nil, "new", fontType, "-no-prompt", "-theme-file", themePath, "-variant", "dark"); !errors.Is(err, styles.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRun_NewPrompted(t *testing.T) {
	// Inputs cover color, family, size and weight; selects leave style and
	// variant unset.
	driver := &scriptedDriver{inputs: []string{"navy", " <i>Courier New</i> ", "20", "600"}}
	out, _, err := run(t, "", driver, "new", fontType)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := map[string]any{
		"color":  "navy",
		"family": "Courier New",
		"size":   20.0,
		"weight": 600.0,
	}
	if diff := cmp.Diff(want, decodeEnvelope(t, out).Value); diff != "" {
		t.Fatalf("envelope value mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Decode(t *testing.T) {
	in := `{"type":"` + fontType + `","value":{"color":" Crimson ","size":11}}`
	out, _, err := run(t, in, nil, "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	env := decodeEnvelope(t, out)
	want := map[string]any{"color": "crimson", "size": 11.0}
	if diff := cmp.Diff(want, env.Value); diff != "" {
		t.Fatalf("decoded value mismatch (-want +got):\n%s", diff)
	}

	var pretty map[string]any
	if err := json.Unmarshal([]byte(out), &pretty); err != nil || !strings.Contains(out, "\n  \"type\"") {
		t.Fatalf("expected indented JSON output, got %q", out)
	}
}

func TestRun_DecodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.json")
	payload := `{"type":"` + fontType + `","value":{"family":"Arial"}}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	out, _, err := run(t, "", nil, "decode", "-file", path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decodeEnvelope(t, out).Value["family"] != "Arial" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRun_DecodeInvalid(t *testing.T) {
	in := `{"type":"` + fontType + `","value":{"size":0,"shadow":"auto"}}`
	_, _, err := run(t, in, nil, "decode")
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, _, err := run(t, `{"type":"a.b.Missing","value":{}}`, nil, "decode"); !errors.Is(err, serializable.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"render"}},
		{name: "bad log format", args: []string{"-log-format", "xml", "list"}},
		{name: "bad log level", args: []string{"-log-level", "trace", "list"}},
		{name: "new without type", args: []string{"new"}},
		{name: "new with two types", args: []string{"new", fontType, fontType}},
		{name: "theme without file", args: []string{"new", fontType, "-no-prompt", "-theme", "paper"}},
		{name: "variant without file", args: []string{"new", "-variant", "dark", fontType}},
		{name: "version without file", args: []string{"new", "-theme-version", "1.0.0", fontType}},
		{name: "unknown flag", args: []string{"-verbose", "list"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, "", nil, tc.args...)
			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("expected ExitError, got %v", err)
			}
			if exitErr.Code != 2 {
				t.Fatalf("expected exit code 2, got %d", exitErr.Code)
			}
		})
	}
}

func TestRun_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", nil, "-log-level", "debug", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(stderr, "Registered serializable type.") {
		t.Fatalf("expected registry debug logs, got %q", stderr)
	}
}
