package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/internal/api"
	"github.com/vfg2006/campaign-cost-api/internal/config"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/converting"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/costing"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/subs"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	redtrackClient := redtrackclient.NewClient(cfg)

	campaignService := campaigning.NewService(redtrackClient)
	clickService := tracking.NewService(redtrackClient)
	subService := subs.NewService(cfg, redtrackClient)
	costService := costing.NewService(redtrackClient, campaignService)
	revenueService := converting.NewService(redtrackClient)

	server, err := api.New(
		cfg,
		authenticator,
		campaignService,
		clickService,
		subService,
		costService,
		revenueService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
