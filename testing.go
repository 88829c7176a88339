package cked

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the output of rendering editors for testing.
//
// Provides convenience methods for asserting on the markup, the script
// bodies and the creation calls.
type TestResult struct {
	HTML    string
	Scripts []string
	Page    *Page
}

// TestRender renders a component with a fresh Page and returns testable
// output:
//
//	result, err := cked.TestRender(cked.Replace("body").Config(cfg))
//	if !result.HasCall("CKEDITOR.replace( 'body', {\"toolbar\":\"Basic\"});") {
//	    t.Fatal("missing replace call")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders with ctx. A Page is added when ctx has none;
// pass a context from WithPage to test several renders on one page.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	page := PageFrom(ctx)
	if page == nil {
		page = NewPage()
		ctx = WithPage(ctx, page)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:    buf.String(),
		Scripts: parseScripts(buf.String()),
		Page:    page,
	}, nil
}

// TestHandler serves one GET request through h and returns the body as a
// TestResult. Use it to test handlers wrapped in Middleware.
func TestHandler(h http.Handler, url string) (*TestResult, int) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	return &TestResult{HTML: body, Scripts: parseScripts(body)}, rec.Code
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasCall checks if any inline script contains call.
func (r *TestResult) HasCall(call string) bool {
	for _, s := range r.Scripts {
		if strings.Contains(s, call) {
			return true
		}
	}
	return false
}

// Count returns how many times substr occurs in the HTML.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// LoadsLibrary checks if the HTML includes ckeditor.js.
func (r *TestResult) LoadsLibrary() bool {
	return strings.Contains(r.HTML, `ckeditor.js`)
}

var scriptBody = regexp.MustCompile(`(?s)//<!\[CDATA\[\n(.*?)\n//\]\]>`)

// parseScripts extracts the bodies of scripts written by Script.
func parseScripts(html string) []string {
	var out []string
	for _, m := range scriptBody.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}
