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

package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-sentra/sentra/internal/engine/service"
	"github.com/go-sentra/sentra/pkg/ctx"
	httpx "github.com/go-sentra/sentra/pkg/http"
	"github.com/go-sentra/sentra/pkg/http/middleware"
	"github.com/go-sentra/sentra/pkg/version"
)

/**
 * @file: router.go
 * @description: setup router
 *  		     internal api router, use by console web
 */

type Router struct {
	Http     *httpx.Http
	Ctx      *ctx.Context
	Services *service.Services
}

func NewRouter(httpConf *httpx.Http, ctx *ctx.Context, services *service.Services) *Router {
	return &Router{
		Http:     httpConf,
		Ctx:      ctx,
		Services: services,
	}
}

func (rt *Router) Router() *fiber.App {

	app := fiber.New(fiber.Config{
		ReadTimeout:           time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(rt.Http.IdleTimeout) * time.Second,
		DisableStartupMessage: true,
	})

	// cors
	app.Use(middleware.CorsMiddleware())

	// panic recover
	app.Use(middleware.ExceptionMiddleware)

	if rt.Http.AccessLog {
		app.Use(middleware.AccessLogMiddleware(rt.Http, rt.Ctx.Log.Desugar()))
	}

	// unified response
	app.Use(middleware.UnifiedResponseMiddleware())

	if rt.Http.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	api := app.Group(rt.Http.ContextPath)

	rt.permissionRouter(api)
	rt.dictionaryRouter(api)
	rt.departmentRouter(api)
	rt.bundleRouter(api)
	rt.userRouter(api)
	rt.accessRouter(api)

	return app
}

// queryInt parses an integer query parameter, 0 when absent or invalid
func queryInt(c *fiber.Ctx, key string) int {
	return c.QueryInt(key, 0)
}
