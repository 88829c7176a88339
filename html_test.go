package cked

import (
	"testing"

	"github.com/a-h/templ"
)

func TestScript(t *testing.T) {
	got := Script("CKEDITOR.replace( 'a' );")
	want := "<script type=\"text/javascript\">\n//<![CDATA[\nCKEDITOR.replace( 'a' );\n//]]></script>\n"
	if got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}
}

func TestIncludeScript(t *testing.T) {
	tests := []struct {
		basePath string
		query    string
		expect   string
	}{
		{"/ckeditor/", "", `<script type="text/javascript" src="/ckeditor/ckeditor.js"></script>` + "\n"},
		{"/ckeditor", "?t=B5GJ", `<script type="text/javascript" src="/ckeditor/ckeditor.js?t=B5GJ"></script>` + "\n"},
		{"/a&b/", "", `<script type="text/javascript" src="/a&amp;b/ckeditor.js"></script>` + "\n"},
	}
	for _, tt := range tests {
		if got := IncludeScript(tt.basePath, tt.query); got != tt.expect {
			t.Errorf("IncludeScript(%q, %q) = %q, want %q", tt.basePath, tt.query, got, tt.expect)
		}
	}
}

func TestTextarea(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  string
		attrs  templ.Attributes
		expect string
	}{
		{
			name:   "default size",
			field:  "body",
			value:  "<p>Hi</p>",
			expect: `<textarea name="body" id="body" cols="60" rows="8">&lt;p&gt;Hi&lt;/p&gt;</textarea>` + "\n",
		},
		{
			name:   "attributes sorted",
			field:  "body",
			attrs:  templ.Attributes{"rows": 4, "class": "rich", "disabled": true, "hidden": false},
			expect: `<textarea name="body" id="body" class="rich" disabled rows="4"></textarea>` + "\n",
		},
		{
			name:   "escaped",
			field:  `a"b`,
			attrs:  templ.Attributes{"title": `x<y`},
			expect: `<textarea name="a&#34;b" id="a&#34;b" title="x&lt;y"></textarea>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Textarea(tt.field, tt.value, tt.attrs); got != tt.expect {
				t.Errorf("Textarea() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestAppendSlash(t *testing.T) {
	tests := map[string]string{
		"":          "/",
		"/":         "/",
		"/ckeditor": "/ckeditor/",
		"ck/":       "ck/",
	}
	for in, want := range tests {
		if got := AppendSlash(in); got != want {
			t.Errorf("AppendSlash(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQuoteJS(t *testing.T) {
	got := quoteJS("it's a\\b\n</script>")
	want := `it\'s a\\b\n<\/script>`
	if got != want {
		t.Errorf("quoteJS() = %q, want %q", got, want)
	}
}
