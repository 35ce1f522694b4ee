package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-container/framework/app"
	gohttp "github.com/km-arc/go-container/framework/http"
)

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := application.Boot(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	application.Router().Get("/health", func(w http.ResponseWriter, r *http.Request) {
		id, err := gohttp.Resolve[string](r, gohttp.RequestIDKey)
		if err != nil {
			gohttp.NewResponse(w).ResolveError(err)
			return
		}
		gohttp.NewResponse(w).Success(map[string]any{"status": "ok", "request_id": id})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Error(err.Error())
		os.Exit(1)
	}
}
