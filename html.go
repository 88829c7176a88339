package cked

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Default textarea size, used when Insert gets no attributes.
const (
	DefaultTextareaRows = "8"
	DefaultTextareaCols = "60"
)

var jsQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "</", `<\/`)

// quoteJS escapes s for use inside a single-quoted script string.
func quoteJS(s string) string {
	return jsQuoter.Replace(s)
}

// Script wraps script source in a script element with a CDATA guard.
func Script(body string) string {
	var sb strings.Builder
	sb.WriteString("<script type=\"text/javascript\">\n")
	sb.WriteString("//<![CDATA[\n")
	sb.WriteString(body)
	sb.WriteString("\n//]]>")
	sb.WriteString("</script>\n")
	return sb.String()
}

// IncludeScript returns the script element loading ckeditor.js from
// basePath, with query appended to the file name.
func IncludeScript(basePath, query string) string {
	return `<script type="text/javascript" src="` +
		templ.EscapeString(AppendSlash(basePath)+"ckeditor.js"+query) +
		"\"></script>\n"
}

// Textarea returns the textarea element an editor replaces. name is used
// for both name and id. Attributes are written in name order; with none,
// rows and cols default to DefaultTextareaRows and DefaultTextareaCols.
// The value and attribute values are HTML-escaped.
func Textarea(name, value string, attrs templ.Attributes) string {
	if len(attrs) == 0 {
		attrs = templ.Attributes{"rows": DefaultTextareaRows, "cols": DefaultTextareaCols}
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(`<textarea name="`)
	sb.WriteString(templ.EscapeString(name))
	sb.WriteString(`" id="`)
	sb.WriteString(templ.EscapeString(name))
	sb.WriteString(`"`)
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				sb.WriteString(" ")
				sb.WriteString(templ.EscapeString(k))
			}
		case string:
			writeAttr(&sb, k, v)
		default:
			writeAttr(&sb, k, fmt.Sprint(v))
		}
	}
	sb.WriteString(">")
	sb.WriteString(templ.EscapeString(value))
	sb.WriteString("</textarea>\n")
	return sb.String()
}

func writeAttr(sb *strings.Builder, k, v string) {
	sb.WriteString(" ")
	sb.WriteString(templ.EscapeString(k))
	sb.WriteString(`="`)
	sb.WriteString(templ.EscapeString(v))
	sb.WriteString(`"`)
}

// AppendSlash returns path ending in a slash. An empty path becomes "/".
func AppendSlash(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}
