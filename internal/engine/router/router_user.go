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

func (rt *Router) userRouter(r fiber.Router) {
	userGroup := r.Group("/users")
	{
		userGroup.Get("/", rt.listUsers)                         // GET /users - paginated list
		userGroup.Post("/", rt.createUser)                       // POST /users - create profile
		userGroup.Get("/:userId", rt.getUser)                    // GET /users/:userId - profile + bindings
		userGroup.Delete("/:userId", rt.deleteUser)              // DELETE /users/:userId
		userGroup.Put("/:userId/bundles", rt.syncUserBundles)    // PUT /users/:userId/bundles - full sync
		userGroup.Put("/:userId/assignments", rt.syncAssignments) // PUT /users/:userId/assignments - full sync
		userGroup.Put("/:userId/lock", rt.lockUser)              // PUT /users/:userId/lock - lock/unlock
		userGroup.Put("/:userId/superadmin", rt.setSuperAdmin)   // PUT /users/:userId/superadmin - dedicated toggle
	}
}

func (rt *Router) listUsers(c *fiber.Ctx) error {
	users, total, err := rt.Services.User.ListUsers(c.UserContext(), queryInt(c, "pageNum"), queryInt(c, "pageSize"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, fiber.Map{
		"users": users,
		"total": total,
	})
	return nil
}

func (rt *Router) createUser(c *fiber.Ctx) error {
	var req model.CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}
	user, err := rt.Services.User.CreateUser(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, user)
	return nil
}

func (rt *Router) getUser(c *fiber.Ctx) error {
	detail, err := rt.Services.User.GetUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, detail)
	return nil
}

func (rt *Router) deleteUser(c *fiber.Ctx) error {
	if err := rt.Services.User.DeleteUser(c.UserContext(), c.Params("userId")); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "delete user")
	return nil
}

// syncUserBundles 全量替换用户与权限包的绑定
func (rt *Router) syncUserBundles(c *fiber.Ctx) error {
	var req model.SyncUserBundlesReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.User.SyncBundles(c.UserContext(), c.Params("userId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "sync user bundles")
	return nil
}

// syncAssignments 全量替换用户的任职集合
func (rt *Router) syncAssignments(c *fiber.Ctx) error {
	var req model.SyncAssignmentsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.User.SyncAssignments(c.UserContext(), c.Params("userId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "sync user assignments")
	return nil
}

func (rt *Router) lockUser(c *fiber.Ctx) error {
	var req model.LockUserReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.User.LockUser(c.UserContext(), c.Params("userId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "toggle user lock")
	return nil
}

func (rt *Router) setSuperAdmin(c *fiber.Ctx) error {
	var req model.SetSuperAdminReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.User.SetSuperAdmin(c.UserContext(), c.Params("userId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "set super admin")
	return nil
}
