// Package cked embeds the CKEditor rich-text editor in server-rendered Go
// pages.
//
// An Editor describes one placement of the editor widget. Rendering it writes
// the markup and script that create the editor in the browser: the library
// include (once per page), the placeholder textarea for Insert, and one of
// five creation calls with the configuration encoded as a script literal.
//
// # Creation Methods
//
//	cked.Replace("body")            // CKEDITOR.replace( 'body' )
//	cked.ReplaceAll("rich")         // every textarea with class "rich"
//	cked.Inline("intro")            // CKEDITOR.inline( 'intro' )
//	cked.InlineAll()                // every contenteditable element
//	cked.Insert("body", "<p>Hi</p>") // writes the textarea, then replaces it
//
// Editors implement templ.Component:
//
//	@cked.Replace("body").BasePath("/ckeditor/").Config(cfg)
//
// # Configuration
//
// A Config is an ordered set of options. Values are jsenc.Value: Text,
// Number, Bool, Object, Members, List, Raw and Null. Put converts plain Go
// values:
//
//	cfg := cked.NewConfig().
//	    Put("toolbar", [][]string{{"Bold", "Italic"}}).
//	    Put("width", 500).
//	    Set("enterMode", jsenc.Text("CKEDITOR.ENTER_BR"))
//
// Text has three escape hatches: a "@@" prefix writes the rest as raw script,
// text starting with "CKEDITOR." is written as a symbol reference, and text
// wrapped in brackets (such as "[['Bold']]") is written as a hand-written
// literal.
//
// # Global Configuration
//
// Options shared by every editor live in a scope: the page, the request,
// the session or the application. Editors look through their scopes in order
// and use the first configuration found as the base, with their own options
// merged on top:
//
//	editor.Scopes(cked.PageScope(), cked.RequestScope(),
//	    cked.SessionScope(sessions, enc), cked.ApplicationScope(appConfig))
//
// The global configuration is cloned before merging, so one shared instance
// can serve concurrent requests.
//
// # Events
//
// EventTable maps event names to handler code. Instance events are stored in
// the "on" option; global events are registered with CKEDITOR.on once per
// page:
//
//	events := cked.NewEventTable().Add("instanceReady", "function (ev) { }")
//	cked.Replace("body").Events(events)
//
// # Page State
//
// A Page in the request context remembers what has already been written so
// that several editors on one page share one library include. Middleware
// attaches a Page to every request.
package cked
