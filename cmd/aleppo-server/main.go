package main

import (
	"flag"
	"net/http"

	"aleppo/lib/configutil"
	"aleppo/lib/serviceutil"
	"aleppo/lib/sqliteutil"
	"aleppo/services/importer"
	"aleppo/services/importer/db"
)

type ImporterConfig struct {
	Database string `json:"database"`
	// origin the bookmarklet posts back to, e.g. https://aleppo.example.com
	AppUrl string `json:"app_url"`
}

type Config struct {
	Port     int            `json:"port"`
	Importer ImporterConfig `json:"importer"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	mux := http.NewServeMux()

	database, err := sqliteutil.OpenDB(db.Schema, cfg.Importer.Database)
	if err != nil {
		serviceutil.Fatal("init importer db", err)
	}
	importerService, err := importer.NewService(ctx, database, cfg.Importer.AppUrl)
	if err != nil {
		serviceutil.Fatal("init importer", err)
	}
	importerService.RegisterRoutes(mux)

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
