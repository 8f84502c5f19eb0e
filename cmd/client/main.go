package main

import (
	"os"

	"github.com/MKhiriev/go-courses-api/internal/adapter"
	"github.com/MKhiriev/go-courses-api/internal/client"
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("courses-api-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(*cfg, buildInfo, adapter.NewHTTPAPIAdapter, os.Stdout, log)
	if err = app.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
