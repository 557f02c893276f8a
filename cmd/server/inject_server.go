package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/pandodao/money-tracker/handler/hc"
	"github.com/pandodao/money-tracker/handler/view"
	"github.com/pandodao/money-tracker/handler/web"
	"github.com/pandodao/money-tracker/service/session"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

var serverSet = wire.NewSet(
	view.New,
	web.New,
	provideServer,
)

func provideServer(v *viper.Viper, webHandler *web.Server, sess *session.Session) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)

	if origins := v.GetStringSlice("web.cors"); len(origins) > 0 {
		m.Use(cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}).Handler)
	}

	m.Mount("/hc", hc.Handler(version, func() string {
		return sess.State().String()
	}))
	m.Mount("/", webHandler.Handler())

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
