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

package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/go-sentra/sentra/pkg/ctx"
	"github.com/go-sentra/sentra/pkg/database"
	"github.com/go-sentra/sentra/pkg/log"
)

func provideGormDB(cfg database.Database) (*gorm.DB, error) {
	return database.NewMySQLConnection(cfg)
}

func provideSugaredLogger(logger *log.Logger) *zap.SugaredLogger {
	return logger.Log
}

func provideAppContext(db *gorm.DB, rds *redis.Client, slog *zap.SugaredLogger) *ctx.Context {
	return ctx.NewContext(context.Background(), db, rds, slog)
}
