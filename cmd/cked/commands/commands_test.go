package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/cked"
)

const profileYAML = `basePath: /ckeditor/
config:
  toolbar: Basic
globalEvents:
  dialogDefinition: defineDialog
`

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(profileYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderEditor(t *testing.T) {
	profile, err := cked.ParseProfile([]byte(profileYAML))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}

	var buf bytes.Buffer
	if err := renderEditor(context.Background(), &buf, profile, renderOptions{method: "replace", name: "body"}); err != nil {
		t.Fatalf("renderEditor() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`src="/ckeditor/ckeditor.js"`,
		"CKEDITOR.on('dialogDefinition', defineDialog);",
		`CKEDITOR.replace( 'body', {"toolbar":"Basic"});`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderEditorMethods(t *testing.T) {
	tests := []struct {
		name   string
		opts   renderOptions
		expect string
	}{
		{"replaceAll by class", renderOptions{method: "replaceAll", class: "rich"}, "CKEDITOR.replaceAll( 'rich' );"},
		{"inlineAll", renderOptions{method: "inlineall"}, "CKEDITOR.inlineAll();"},
		{"inline", renderOptions{method: "inline", name: "intro"}, "CKEDITOR.inline( 'intro' );"},
		{"insert", renderOptions{method: "insert", name: "body", value: "x<y"}, `<textarea name="body" id="body" cols="60" rows="8">x&lt;y</textarea>`},
		{"insert inline", renderOptions{method: "insert", name: "body", inline: true}, "CKEDITOR.inline( 'body');"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := renderEditor(context.Background(), &buf, &cked.Profile{}, tt.opts); err != nil {
				t.Fatalf("renderEditor() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.expect) {
				t.Errorf("missing %q in %q", tt.expect, buf.String())
			}
		})
	}
}

func TestRenderEditorErrors(t *testing.T) {
	var buf bytes.Buffer

	err := renderEditor(context.Background(), &buf, &cked.Profile{}, renderOptions{method: "create", name: "x"})
	if !errors.Is(err, cked.ErrUnknownMethod) {
		t.Errorf("error = %v, want ErrUnknownMethod", err)
	}

	err = renderEditor(context.Background(), &buf, &cked.Profile{}, renderOptions{method: "replace"})
	if !errors.Is(err, cked.ErrMissingName) {
		t.Errorf("error = %v, want ErrMissingName", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestEncodeConfig(t *testing.T) {
	cfg := cked.NewConfig().Put("width", 500).Put("bad", struct{}{})

	var buf bytes.Buffer
	if err := encodeConfig(&buf, cfg, false); err != nil {
		t.Fatalf("encodeConfig() error = %v", err)
	}
	if got := buf.String(); got != "{\"width\":500,\"bad\":}\n" {
		t.Errorf("output = %q", got)
	}

	buf.Reset()
	if err := encodeConfig(&buf, cfg, true); !errors.Is(err, cked.ErrUnsupportedValue) {
		t.Errorf("strict error = %v, want ErrUnsupportedValue", err)
	}
}

func TestEncodeSource(t *testing.T) {
	cfg, err := encodeSource(strings.NewReader("toolbar: Full\n"), []string{"-"})
	if err != nil {
		t.Fatalf("encodeSource(stdin) error = %v", err)
	}
	if got := cfg.Script(); got != `{"toolbar":"Full"}` {
		t.Errorf("stdin config = %s", got)
	}

	profilePath = writeProfile(t)
	t.Cleanup(func() { profilePath = "" })

	cfg, err = encodeSource(nil, nil)
	if err != nil {
		t.Fatalf("encodeSource(profile) error = %v", err)
	}
	if got := cfg.Script(); got != `{"toolbar":"Basic"}` {
		t.Errorf("profile config = %s", got)
	}
}

func TestRootCommand(t *testing.T) {
	path := writeProfile(t)
	t.Cleanup(func() { profilePath = "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if got := out.String(); got != "cked version "+Version+"\n" {
		t.Errorf("version output = %q", got)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"render", "--profile", path, "--method", "inline", "--name", "intro"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if want := `CKEDITOR.inline( 'intro', {"toolbar":"Basic"});`; !strings.Contains(out.String(), want) {
		t.Errorf("missing %q in %q", want, out.String())
	}
}
