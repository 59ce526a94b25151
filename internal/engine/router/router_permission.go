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

func (rt *Router) permissionRouter(r fiber.Router) {
	permGroup := r.Group("/permissions")
	{
		permGroup.Get("/", rt.permissionMatrix)                  // GET /permissions - matrix grouped by module
		permGroup.Post("/", rt.createPermission)                 // POST /permissions - register a permission key
		permGroup.Put("/:permKey", rt.updatePermission)          // PUT /permissions/:permKey - update display attributes
		permGroup.Put("/:permKey/status", rt.togglePermission)   // PUT /permissions/:permKey/status - active/maintenance
	}
}

// permissionMatrix 权限矩阵，按模块分组
func (rt *Router) permissionMatrix(c *fiber.Ctx) error {
	groups, err := rt.Services.Permission.Matrix(c.UserContext())
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, groups)
	return nil
}

// createPermission 登记权限点
func (rt *Router) createPermission(c *fiber.Ctx) error {
	var req model.CreatePermissionReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.PermKey == "" || req.Module == "" {
		return badRequest(c, "permKey and module are required")
	}
	def, err := rt.Services.Permission.CreateDefinition(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, def)
	return nil
}

// updatePermission 更新权限点展示属性
func (rt *Router) updatePermission(c *fiber.Ctx) error {
	var req model.UpdatePermissionReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.Permission.UpdateDefinition(c.UserContext(), c.Params("permKey"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "update permission")
	return nil
}

// togglePermission 切换 active/maintenance
func (rt *Router) togglePermission(c *fiber.Ctx) error {
	var req model.TogglePermissionStatusReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.Permission.ToggleStatus(c.UserContext(), c.Params("permKey"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "toggle permission status")
	return nil
}
