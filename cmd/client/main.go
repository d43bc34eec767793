package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/go-topologic/internal/client"
	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/logger"
)

func main() {
	log := logger.NewClientLogger("topologic-client")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), cfg.Args); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
