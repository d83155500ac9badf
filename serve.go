package main

import (
	"context"
	"net/http"

	"fromblank/builder"
	"fromblank/server"
)

type serveCmd struct {
	Addr string `help:"HTTP listen address (overrides LISTEN_ADDR)."`
}

func (c *serveCmd) Run(app *appContext) error {
	ctx := context.Background()

	st, err := openStore(ctx, app.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	llm, err := buildLLM(app.cfg.LLM)
	if err != nil {
		return err
	}

	co, err := builder.NewCoordinator(st, llm, builder.Options{
		Timeout:          app.cfg.LLM.Timeout,
		DegradeGetToMiss: app.cfg.Store.DegradeToMiss,
	}, app.log)
	if err != nil {
		return err
	}

	srv, err := server.New(st, co, server.NewMetrics(nil), app.cfg.Store.DegradeToMiss, app.log)
	if err != nil {
		return err
	}

	addr := app.cfg.ListenAddr
	if c.Addr != "" {
		addr = c.Addr
	}
	app.log.Info().
		Str("addr", addr).
		Str("store", app.cfg.Store.Driver).
		Str("llm", app.cfg.LLM.Provider).
		Msg("starting server")
	return http.ListenAndServe(addr, srv.Routes())
}
