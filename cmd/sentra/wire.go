//go:build wireinject
// +build wireinject

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
	"github.com/google/wire"

	"github.com/go-sentra/sentra/internal/engine/bootstrap"
	"github.com/go-sentra/sentra/internal/engine/config"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/internal/engine/router"
	"github.com/go-sentra/sentra/internal/engine/service"
	"github.com/go-sentra/sentra/pkg/cache"
	"github.com/go-sentra/sentra/pkg/database"
	"github.com/go-sentra/sentra/pkg/log"
)

func initApp(configPath string) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.ProviderSet,
		// 基础设施
		log.ProviderSet,
		provideSugaredLogger,
		provideGormDB,
		database.NewDatabase,
		cache.ProviderSet,
		provideAppContext,
		// 仓储层
		repo.ProviderSet,
		// 服务层
		service.ProviderSet,
		// 路由层
		router.ProviderSet,
		// 应用层
		bootstrap.NewApp,
	))
}
