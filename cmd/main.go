package main

import (
	"context"
	"fmt"
	"os"

	"github.com/livesitter/livesitter-backend/internal/app"
)

func main() {
	a, err := app.New(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server listening", "port", a.Cfg.Port, "env", a.Cfg.Env)
	if err := a.Run(); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
