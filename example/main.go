package main

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/pthm/cked"
)

//go:embed editor.yaml
var profileYAML []byte

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	profile, err := cked.ParseProfile(profileYAML)
	if err != nil {
		logger.Error("loading profile", "error", err)
		os.Exit(1)
	}

	// In production, use a real secret
	enc, err := cked.NewEncoder([]byte("example-key-must-be-32-bytes!!"))
	if err != nil {
		logger.Error("creating encoder", "error", err)
		os.Exit(1)
	}

	sessions := scs.New()
	app := &app{
		profile:  profile,
		sessions: sessions,
		enc:      enc,
		siteConfig: cked.NewConfig().
			Put("uiColor", "#DDE4EE").
			Put("removePlugins", []string{"elementspath"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", app.handleIndex)
	mux.HandleFunc("POST /language", app.handleLanguage)
	mux.Handle("/ckeditor/", http.StripPrefix("/ckeditor/", http.FileServer(http.Dir("ckeditor"))))

	addr := ":8080"
	logger.Info("starting server", "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, sessions.LoadAndSave(app.withPage(mux))); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
