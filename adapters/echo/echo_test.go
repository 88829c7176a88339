package ckedecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pthm/cked"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUse(t *testing.T) {
	e := echo.New()
	Use(e)
	e.GET("/edit", func(c echo.Context) error {
		return Render(c, cked.Fragment(
			cked.Replace("a").BasePath("/ckeditor/"),
			cked.Replace("b").BasePath("/ckeditor/"),
		))
	})

	rec := serve(e, "/edit")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if n := strings.Count(rec.Body.String(), "ckeditor.js"); n != 1 {
		t.Errorf("library included %d times, want 1", n)
	}
}

func TestFreshPagePerRequest(t *testing.T) {
	e := echo.New()
	Use(e)
	e.GET("/edit", func(c echo.Context) error {
		return Render(c, cked.Replace("a").BasePath("/ckeditor/"))
	})

	for i := 0; i < 2; i++ {
		if body := serve(e, "/edit").Body.String(); !strings.Contains(body, "ckeditor.js") {
			t.Errorf("request %d did not load the library", i)
		}
	}
}

func TestWithConfig(t *testing.T) {
	global := cked.NewConfig().Put("language", "pl")

	e := echo.New()
	Use(e, WithConfig(global))
	e.GET("/edit", func(c echo.Context) error {
		return Render(c, cked.Replace("a").Config(cked.NewConfig().Put("width", 500)))
	})

	body := serve(e, "/edit").Body.String()
	if !strings.Contains(body, `CKEDITOR.replace( 'a', {"language":"pl","width":500});`) {
		t.Errorf("body = %q", body)
	}
	if global.Script() != `{"language":"pl"}` {
		t.Errorf("global config changed: %s", global.Script())
	}
}

func TestWithProfile(t *testing.T) {
	profile, err := cked.ParseProfile([]byte("params:\n  \"*\":\n    language: de\n"))
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	Use(e, WithProfile(profile))
	e.GET("/edit", func(c echo.Context) error {
		return Render(c, cked.Inline("intro"))
	})

	body := serve(e, "/edit").Body.String()
	if !strings.Contains(body, `CKEDITOR.inline( 'intro', {"language":"de"});`) {
		t.Errorf("body = %q", body)
	}
}

func TestUseGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("/app")
	UseGroup(g)

	var inGroup, outside bool
	g.GET("/edit", func(c echo.Context) error {
		inGroup = cked.PageFrom(c.Request().Context()) != nil
		return c.NoContent(http.StatusOK)
	})
	e.GET("/other", func(c echo.Context) error {
		outside = cked.PageFrom(c.Request().Context()) != nil
		return c.NoContent(http.StatusOK)
	})

	serve(e, "/app/edit")
	serve(e, "/other")

	if !inGroup {
		t.Error("group route should carry a page")
	}
	if outside {
		t.Error("route outside the group should not carry a page")
	}
}

func TestRenderError(t *testing.T) {
	e := echo.New()
	Use(e)
	e.GET("/edit", func(c echo.Context) error {
		return Render(c, cked.Replace(""))
	})

	if rec := serve(e, "/edit"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
