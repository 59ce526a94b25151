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

func (rt *Router) departmentRouter(r fiber.Router) {
	deptGroup := r.Group("/departments")
	{
		deptGroup.Get("/", rt.departmentTree)                  // GET /departments - full tree
		deptGroup.Post("/", rt.createDepartment)               // POST /departments - create
		deptGroup.Put("/:deptId", rt.updateDepartment)         // PUT /departments/:deptId - rename
		deptGroup.Put("/:deptId/parent", rt.reparentDepartment) // PUT /departments/:deptId/parent - move subtree
		deptGroup.Delete("/:deptId", rt.deleteDepartment)      // DELETE /departments/:deptId?cascade=true
		deptGroup.Get("/:deptId/descendants", rt.departmentDescendants) // GET /departments/:deptId/descendants
		deptGroup.Get("/:deptId/users", rt.departmentUsers)    // GET /departments/:deptId/users - direct assignments
	}
}

// departmentDescendants 子树全部下级部门，不含自身
func (rt *Router) departmentDescendants(c *fiber.Ctx) error {
	depts, err := rt.Services.Department.Descendants(c.UserContext(), c.Params("deptId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, depts)
	return nil
}

// departmentUsers 部门的直接任职记录
func (rt *Router) departmentUsers(c *fiber.Ctx) error {
	assignments, err := rt.Services.Department.Users(c.UserContext(), c.Params("deptId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, assignments)
	return nil
}

func (rt *Router) departmentTree(c *fiber.Ctx) error {
	tree, err := rt.Services.Department.Tree(c.UserContext())
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, tree)
	return nil
}

func (rt *Router) createDepartment(c *fiber.Ctx) error {
	var req model.CreateDepartmentReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.Name == "" || req.Code == "" {
		return badRequest(c, "name and code are required")
	}
	dept, err := rt.Services.Department.CreateDepartment(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, dept)
	return nil
}

func (rt *Router) updateDepartment(c *fiber.Ctx) error {
	var req model.UpdateDepartmentReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.Department.UpdateDepartment(c.UserContext(), c.Params("deptId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "update department")
	return nil
}

// reparentDepartment 移动子树；环检测失败返回 DepartmentCycle
func (rt *Router) reparentDepartment(c *fiber.Ctx) error {
	var req model.ReparentDepartmentReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if err := rt.Services.Department.ReparentDepartment(c.UserContext(), c.Params("deptId"), &req); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "reparent department")
	return nil
}

func (rt *Router) deleteDepartment(c *fiber.Ctx) error {
	cascade := c.QueryBool("cascade", false)
	if err := rt.Services.Department.DeleteDepartment(c.UserContext(), c.Params("deptId"), cascade); err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.OPERATION, "delete department")
	return nil
}
