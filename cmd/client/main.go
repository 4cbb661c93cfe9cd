package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/accbox/internal/client"
	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if len(os.Args) > 1 && (os.Args[1] == "version" || os.Args[1] == "--version") {
		fmt.Println(buildInfo.String())
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("accbox").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("accbox", cfg.Log.File)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("address", cfg.Adapter.HTTPAddress).
		Str("totp_source", cfg.TOTP.Source).
		Msg("starting client")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
