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
	"fmt"
	"sync"

	"github.com/go-sentra/sentra/pkg/cache"
	"github.com/go-sentra/sentra/pkg/conf"
	"github.com/go-sentra/sentra/pkg/database"
	"github.com/go-sentra/sentra/pkg/http"
	"github.com/go-sentra/sentra/pkg/log"
)

type AppConfig struct {
	Log      log.Conf          `mapstructure:"log"`
	Http     http.Http         `mapstructure:"http"`
	Database database.Database `mapstructure:"database"`
	Redis    cache.Redis       `mapstructure:"redis"`
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		if _, err := conf.LoadConfigFile(confDir, &cfg); err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
	})
	return cfg
}
