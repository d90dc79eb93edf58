package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/config"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/adapter/controller"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/infrastructure/datastore"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/infrastructure/router"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/registry"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	logger := newLogger()
	defer logger.Sync()

	db := newDBClient()
	defer db.Close()

	ctrl := newController(db)

	e := router.New(ctrl, logger)

	e.Logger.Fatal(e.Start(":" + config.C.Server.Address))
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if config.C.AppEnv == config.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}

func newDBClient() *sqlx.DB {
	db, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	return db
}

func newController(db *sqlx.DB) controller.Controller {
	r := registry.New(db)
	return r.NewController()
}
