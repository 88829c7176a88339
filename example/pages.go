package main

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"github.com/pthm/cked"
)

type app struct {
	profile    *cked.Profile
	sessions   *scs.SessionManager
	enc        *cked.Encoder
	siteConfig *cked.Config
}

// scopes looks for a per-user configuration in the session before falling
// back to the site-wide one.
func (a *app) scopes() []cked.Source {
	return []cked.Source{
		cked.PageScope(),
		cked.SessionScope(a.sessions, a.enc),
		cked.ApplicationScope(a.siteConfig),
	}
}

// withPage attaches page state preloaded with the profile's params.
func (a *app) withPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := cked.WithPage(r.Context(), a.profile.Page())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *app) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	body := a.profile.Apply(cked.Replace("body")).Scopes(a.scopes()...)
	notes := a.profile.Apply(cked.Insert("notes", r.URL.Query().Get("notes"))).
		Scopes(a.scopes()...).
		Attrs(templ.Attributes{"rows": 4, "cols": 80})
	summary := a.profile.Apply(cked.Inline("summary")).Scopes(a.scopes()...)

	if err := cked.Render(w, r, layout(cked.Fragment(body, notes, summary))); err != nil {
		cked.LoggerFrom(r.Context()).Error("rendering page", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (a *app) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("language")
	if lang == "" {
		cked.RemoveSessionConfig(r.Context(), a.sessions)
	} else {
		cfg := a.siteConfig.Clone().Put("language", lang)
		if err := cked.PutSessionConfig(r.Context(), a.sessions, a.enc, cfg); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func layout(editors templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head><title>cked example</title></head>
<body>
<form method="post" action="/language">
<select name="language">
<option value="">Site default</option>
<option value="en">English</option>
<option value="de">Deutsch</option>
<option value="pl">Polski</option>
</select>
<button type="submit">Set language</button>
</form>
<textarea name="body" id="body"></textarea>
<div id="summary" contenteditable="true"><p>Summary</p></div>
`); err != nil {
			return err
		}
		if err := editors.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
