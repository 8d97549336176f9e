package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/recoverops/dca-console/internal/app"
)

func main() {
	var (
		configPath string
		themeName  string
		baseURL    string
	)

	flag.StringVar(&configPath, "config", "", "Path to the config file (defaults to XDG config dir)")
	flag.StringVar(&themeName, "theme", "", "Override theme (light, dark, auto)")
	flag.StringVar(&baseURL, "base-url", "", "Analytics backend base URL (overrides DCA_API_BASE_URL and config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: configPath,
		Theme:      themeName,
		BaseURL:    baseURL,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "dca-console: %v\n", err)
		os.Exit(1)
	}
}
