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
	"github.com/gofiber/fiber/v2"

	"github.com/go-sentra/sentra/internal/engine/consts"
	"github.com/go-sentra/sentra/internal/engine/model"
)

func (rt *Router) bundleRouter(r fiber.Router) {
	bundleGroup := r.Group("/bundles")
	{
		bundleGroup.Get("/", rt.listBundles)                 // GET /bundles - paginated list
		bundleGroup.Post("/", rt.createBundle)               // POST /bundles - create
		bundleGroup.Get("/:bundleId", rt.getBundle)          // GET /bundles/:bundleId - decoded detail
		bundleGroup.Put("/:bundleId", rt.updateBundle)       // PUT /bundles/:bundleId - partial update
		bundleGroup.Post("/:bundleId/clone", rt.cloneBundle) // POST /bundles/:bundleId/clone - verbatim copy
		bundleGroup.Delete("/:bundleId", rt.deleteBundle)    // DELETE /bundles/:bundleId - delete + unbind
	}
}

func (rt *Router) listBundles(c *fiber.Ctx) error {
	bundles, total, err := rt.Services.Bundle.ListBundles(c.UserContext(), queryInt(c, "pageNum"), queryInt(c, "pageSize"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, fiber.Map{
		"bundles": bundles,
		"total":   total,
	})
	return nil
}

func (rt *Router) createBundle(c *fiber.Ctx) error {
	var req model.CreateBundleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}
	bundle, err := rt.Services.Bundle.CreateBundle(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, bundle)
	return nil
}

func (rt *Router) getBundle(c *fiber.Ctx) error {
	bundle, err := rt.Services.Bundle.GetBundle(c.UserContext(), c.Params("bundleId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, bundle)
	return nil
}

func (rt *Router) updateBundle(c *fiber.Ctx) error {
	var req model.UpdateBundleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.Bundle.UpdateBundle(c.UserContext(), c.Params("bundleId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "update bundle")
	return nil
}

// cloneBundle 克隆权限包，三段配置逐字节拷贝
func (rt *Router) cloneBundle(c *fiber.Ctx) error {
	var req model.CloneBundleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}
	bundle, err := rt.Services.Bundle.CloneBundle(c.UserContext(), c.Params("bundleId"), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, bundle)
	return nil
}

func (rt *Router) deleteBundle(c *fiber.Ctx) error {
	if err := rt.Services.Bundle.DeleteBundle(c.UserContext(), c.Params("bundleId")); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "delete bundle")
	return nil
}
