package cked

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
)

func TestTestRender(t *testing.T) {
	result, err := TestRender(Replace("body").BasePath("/ckeditor/").Config(NewConfig().Put("toolbar", "Basic")))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if result.Page == nil || !result.Page.Initialized() {
		t.Error("TestRender should use a page and mark it initialized")
	}
	if !result.LoadsLibrary() {
		t.Error("LoadsLibrary() = false")
	}
	if !result.HasCall(`CKEDITOR.replace( 'body', {"toolbar":"Basic"});`) {
		t.Errorf("HasCall() = false for %v", result.Scripts)
	}
	if !result.HTMLContainsAll("CKEDITOR_BASEPATH", "ckeditor.js") {
		t.Error("HTMLContainsAll() = false")
	}
	if result.HTMLContains("CKEDITOR.inline") {
		t.Error("HTMLContains() = true for an absent call")
	}
	if len(result.Scripts) != 2 {
		t.Errorf("Scripts = %q, want 2 bodies", result.Scripts)
	}
}

func TestTestRenderWithContextKeepsPage(t *testing.T) {
	page := NewPage()
	ctx := WithPage(context.Background(), page)

	if _, err := TestRenderWithContext(ctx, Replace("a").BasePath("/ck/")); err != nil {
		t.Fatal(err)
	}
	result, err := TestRenderWithContext(ctx, Replace("b").BasePath("/ck/"))
	if err != nil {
		t.Fatal(err)
	}
	if result.Page != page {
		t.Error("result should carry the context page")
	}
	if result.LoadsLibrary() {
		t.Error("second render on a page should not load the library")
	}
}

func TestTestRenderError(t *testing.T) {
	renderErr := errors.New("render failed")
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderErr
	})

	if _, err := TestRender(failing); !errors.Is(err, renderErr) {
		t.Errorf("error = %v, want %v", err, renderErr)
	}
	if _, err := TestRender(Replace("")); !errors.Is(err, ErrMissingName) {
		t.Errorf("error = %v, want ErrMissingName", err)
	}
}

func TestTestHandler(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, Script("CKEDITOR.inlineAll();"))
	})

	result, code := TestHandler(h, "/")
	if code != http.StatusTeapot {
		t.Errorf("status = %d", code)
	}
	if !result.HasCall("CKEDITOR.inlineAll();") {
		t.Errorf("Scripts = %q", result.Scripts)
	}
}
