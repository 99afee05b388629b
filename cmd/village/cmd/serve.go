package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/villagehq/village/internal/config"
	"github.com/villagehq/village/internal/database"
	"github.com/villagehq/village/internal/logger"
	"github.com/villagehq/village/internal/model"
	"github.com/villagehq/village/internal/router"
	"github.com/villagehq/village/internal/store"
	"github.com/villagehq/village/internal/svc"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})
	defer logger.Sync()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close(db)

	if err := db.AutoMigrate(
		&model.Entity{},
		&model.User{},
		&model.Group{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seedDefaultData(db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	cache, err := store.NewCache(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer cache.Close()

	svcCtx := svc.New(cfg, db, cache)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	})
	router.Setup(app, svcCtx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	return nil
}

// seedDefaultData creates the site entity and an initial admin user on an
// empty database.
func seedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Entity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding default data")

	site := &model.Entity{Type: model.TypeSite}
	if err := db.Create(site).Error; err != nil {
		return err
	}

	adminEntity := &model.Entity{
		Type:          model.TypeUser,
		OwnerGUID:     site.GUID,
		ContainerGUID: site.GUID,
	}
	if err := db.Create(adminEntity).Error; err != nil {
		return err
	}
	admin := &model.User{
		GUID:     adminEntity.GUID,
		Username: "admin",
		Name:     "Administrator",
	}
	return db.Create(admin).Error
}
