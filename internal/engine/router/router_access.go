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

func (rt *Router) accessRouter(r fiber.Router) {
	accessGroup := r.Group("/access")
	{
		accessGroup.Post("/resolve", rt.resolveAccess)              // POST /access/resolve - three-layer decision
		accessGroup.Get("/policies/:userId", rt.userActivePolicies) // GET /access/policies/:userId - Layer-3 set
	}
}

// resolveAccess 三层判定；record 省略时只做功能性检查
func (rt *Router) resolveAccess(c *fiber.Ctx) error {
	var req model.ResolveReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.UserId == "" || req.PermKey == "" {
		return badRequest(c, "userId and permKey are required")
	}
	dec, err := rt.Services.Access.Resolve(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, dec)
	return nil
}

// userActivePolicies 用户当前生效的输出限制策略
func (rt *Router) userActivePolicies(c *fiber.Ctx) error {
	policies, err := rt.Services.Access.ActivePolicies(c.UserContext(), c.Params("userId"))
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, fiber.Map{
		"activePolicies": policies,
	})
	return nil
}
