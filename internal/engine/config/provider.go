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

package config

import (
	"github.com/google/wire"

	"github.com/go-sentra/sentra/pkg/cache"
	"github.com/go-sentra/sentra/pkg/database"
	"github.com/go-sentra/sentra/pkg/http"
	"github.com/go-sentra/sentra/pkg/log"
)

// ProviderSet 配置层 ProviderSet
var ProviderSet = wire.NewSet(
	NewConf,
	ProvideLogConf,
	ProvideHttpConf,
	ProvideDatabaseConf,
	ProvideRedisConf,
)

func ProvideLogConf(appConf AppConfig) *log.Conf {
	c := appConf.Log
	return &c
}

func ProvideHttpConf(appConf AppConfig) *http.Http {
	c := appConf.Http
	return &c
}

func ProvideDatabaseConf(appConf AppConfig) database.Database {
	return appConf.Database
}

func ProvideRedisConf(appConf AppConfig) cache.Redis {
	return appConf.Redis
}
