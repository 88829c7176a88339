package cked

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pthm/cked/lib/jsenc"
)

const testProfile = `
basePath: /ckeditor
timestamp: B5GJ
config:
  toolbar: Basic
  width: 500
  ratio: 1.5
  resize: false
  skin: ~
  removePlugins: [elementspath, resize]
  enterMode: CKEDITOR.ENTER_BR
  onPaste: !raw function () {}
  styles:
    color: red
events:
  instanceReady:
    - f1
    - f2
  blur: onBlur
globalEvents:
  dialogDefinition: defineDialog
params:
  "*":
    language: en
  body:
    language: de
`

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}

	if p.BasePath != "/ckeditor" || p.Timestamp != "B5GJ" {
		t.Errorf("basePath = %q, timestamp = %q", p.BasePath, p.Timestamp)
	}

	want := []Member{
		{Key: "toolbar", Value: jsenc.Text("Basic")},
		{Key: "width", Value: jsenc.Int(500)},
		{Key: "ratio", Value: jsenc.Float(1.5)},
		{Key: "resize", Value: jsenc.Bool(false)},
		{Key: "skin", Value: jsenc.Null},
		{Key: "removePlugins", Value: jsenc.List{jsenc.Text("elementspath"), jsenc.Text("resize")}},
		{Key: "enterMode", Value: jsenc.Text("CKEDITOR.ENTER_BR")},
		{Key: "onPaste", Value: jsenc.Raw("function () {}")},
		{Key: "styles", Value: jsenc.Members{{Key: "color", Value: jsenc.Text("red")}}},
	}
	if diff := cmp.Diff(want, p.Config.Entries()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"f1", "f2"}, p.Events.Handlers("instanceReady")); diff != "" {
		t.Errorf("instanceReady mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"onBlur"}, p.Events.Handlers("blur")); diff != "" {
		t.Errorf("blur mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"defineDialog"}, p.GlobalEvents.Handlers("dialogDefinition")); diff != "" {
		t.Errorf("globalEvents mismatch (-want +got):\n%s", diff)
	}

	wantParams := map[string]map[string]string{
		"*":    {"language": "en"},
		"body": {"language": "de"},
	}
	if diff := cmp.Diff(wantParams, p.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProfileEncodes(t *testing.T) {
	p, err := ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"toolbar":"Basic","width":500,"ratio":1.5,"resize":false,"skin":null,` +
		`"removePlugins":["elementspath","resize"],"enterMode":CKEDITOR.ENTER_BR,` +
		`"onPaste":function () {},"styles":{"color":"red"}}`
	if got := p.Config.Script(); got != want {
		t.Errorf("Script() = %s, want %s", got, want)
	}
}

func TestProfileApply(t *testing.T) {
	p, err := ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithPage(context.Background(), p.Page())
	out := render(t, ctx, p.Apply(Replace("body")))

	for _, want := range []string{
		"window.CKEDITOR_BASEPATH='/ckeditor/';",
		`src="/ckeditor/ckeditor.js?t=B5GJ"`,
		"\nCKEDITOR.on('dialogDefinition', defineDialog);",
		`"language":"de"`,
		`"on":{"instanceReady":function (ev){(f1)(ev);(f2)(ev);},"blur":onBlur}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "unknown key", input: "basepath: /x\n", expect: `line 1: basepath`},
		{name: "not a mapping", input: "- a\n- b\n", expect: "top level must be a mapping"},
		{name: "config not a mapping", input: "config: [a]\n", expect: "config must be a mapping"},
		{name: "bad events", input: "events:\n  ready: {a: b}\n", expect: `handlers for "ready"`},
		{name: "bad yaml", input: "config: [\n", expect: "invalid profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.input))
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("error = %v, want ErrInvalidProfile", err)
			}
			if !strings.Contains(err.Error(), tt.expect) {
				t.Errorf("error = %q, want it to contain %q", err, tt.expect)
			}
		})
	}
}

func TestParseProfileEmpty(t *testing.T) {
	p, err := ParseProfile(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Config != nil || p.BasePath != "" {
		t.Errorf("empty profile = %+v", p)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("big: 99999999999999999999\nbase: &b {a: 1}\nref: *b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Script(); got != `{"big":100000000000000000000.0,"base":{"a":1},"ref":{"a":1}}` {
		t.Errorf("Script() = %s", got)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("basePath: /ck/\nconfig:\n  width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.BasePath != "/ck/" || p.Config.Script() != `{"width":1}` {
		t.Errorf("profile = %+v", p)
	}

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
