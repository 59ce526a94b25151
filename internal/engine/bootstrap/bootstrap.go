// Copyright 2025 Sentra Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/go-sentra/sentra/internal/engine/config"
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/router"
	"github.com/go-sentra/sentra/pkg/database"
	"github.com/go-sentra/sentra/pkg/log"
)

type App struct {
	HttpApp *fiber.App
	Logger  *log.Logger
	AppConf config.AppConfig
}

// InitAppFunc init app function type
type InitAppFunc func(configPath string) (*App, func(), error)

func NewApp(
	rt *router.Router,
	logger *log.Logger,
	appConf config.AppConfig,
	db database.IDatabase,
) (*App, func(), error) {
	httpApp := rt.Router()

	// 建表/补列；列删除不自动执行
	if err := db.Database().AutoMigrate(
		&model.PermissionDefinition{},
		&model.ScopeDefinition{},
		&model.PolicyDefinition{},
		&model.Department{},
		&model.RoleBundle{},
		&model.UserProfile{},
		&model.UserBundleBinding{},
		&model.DepartmentAssignment{},
	); err != nil {
		return nil, nil, err
	}

	app := &App{
		HttpApp: httpApp,
		Logger:  logger,
		AppConf: appConf,
	}

	cleanup := func() {
		if sqlDB, err := db.Database().DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = logger.Log.Sync()
	}

	return app, cleanup, nil
}

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), config.AppConfig, error) {
	app, cleanup, err := initApp(configFile)
	if err != nil {
		return nil, nil, config.AppConfig{}, err
	}
	return app, cleanup, app.AppConf, nil
}

// Run start app and wait for exit signal, then gracefully shutdown
func Run(app *App, cleanup func()) {
	logger := app.Logger.Log
	appConf := app.AppConf

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// start HTTP server (async)
	go func() {
		addr := appConf.Http.Host + ":" + fmt.Sprintf("%d", appConf.Http.Port)
		logger.Infow("HTTP listener started",
			"address", addr,
		)
		if err := app.HttpApp.Listen(addr); err != nil {
			logger.Errorw("HTTP listener failed",
				"address", addr,
				"error", err,
			)
		}
	}()

	// wait for exit signal
	sig := <-quit
	logger.Infof("Received signal: %v, shutting down gracefully...", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	cleanup()

	logger.Info("Server shutdown complete")
}
