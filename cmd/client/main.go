package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-exam-drafts/internal/client"
	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log, logFile := logger.NewClientLogger("exam-drafts-client", os.Getenv("EXAM_DRAFTS_LOG"))
	defer logFile.Close()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
