package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thermodash/internal/config"
	"thermodash/internal/database"
	"thermodash/internal/logger"
	"thermodash/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "thermodash",
	Short:         "Temperature dashboard for networked thermometers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Overload(); err != nil {
			log.Println("Error loading .env file, skipping")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, userCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err.Error())
	}
}

type app struct {
	cfg *config.Config
	lg  *zap.SugaredLogger
	db  *gorm.DB
	st  *store.Store
}

// bootstrap loads the configuration and connects to the database.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	lg := logger.New(cfg.LogLevel, cfg.Development())
	if cfg.InsecureSecret {
		lg.Warnw("SESSION_SECRET is not set, using the development secret")
	}
	db, err := database.Open(cfg.DatabaseURL, database.Options{MaxOpenConns: cfg.DBMaxOpenConns}, lg)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, lg: lg, db: db, st: store.New(db, cfg.QueryTimeout)}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.lg.Sync()
}
