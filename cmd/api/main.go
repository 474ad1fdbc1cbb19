package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfcarvalho/interco/internal/config"
	"github.com/mfcarvalho/interco/internal/database"
	"github.com/mfcarvalho/interco/internal/fiscal"
	fiscalStore "github.com/mfcarvalho/interco/internal/fiscal/store"
	intercoHttp "github.com/mfcarvalho/interco/internal/http"
	"github.com/mfcarvalho/interco/internal/http/auth"
	fiscalHandler "github.com/mfcarvalho/interco/internal/http/fiscal"
	workflowHandler "github.com/mfcarvalho/interco/internal/http/interco"
	templateHandler "github.com/mfcarvalho/interco/internal/http/template"
	"github.com/mfcarvalho/interco/internal/interco"
	intercoStore "github.com/mfcarvalho/interco/internal/interco/store"
	masterdataStore "github.com/mfcarvalho/interco/internal/masterdata/store"
	"github.com/mfcarvalho/interco/internal/template"
	templateStore "github.com/mfcarvalho/interco/internal/template/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		refdata         = masterdataStore.New(db)
		fiscalService   = fiscal.NewService(fiscalStore.New(db))
		templateService = template.NewService(templateStore.New(db), refdata)
		legStore        = intercoStore.New(db)
		workflow        = interco.NewWorkflow(legStore, refdata)
		generator       = interco.NewGenerator(legStore, templateService, refdata)
	)

	var (
		verifier  = auth.NewVerifier(cfg.Auth.JWTSecret)
		fiscalH   = fiscalHandler.NewHandler(fiscalService)
		templateH = templateHandler.NewHandler(templateService)
		workflowH = workflowHandler.NewHandler(workflow, generator, fiscalService)
	)

	router := intercoHttp.New(verifier, fiscalH, templateH, workflowH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
