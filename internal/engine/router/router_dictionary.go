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

func (rt *Router) dictionaryRouter(r fiber.Router) {
	scopeGroup := r.Group("/scopes")
	{
		scopeGroup.Get("/", rt.listScopes)   // GET /scopes - list scope dimensions
		scopeGroup.Post("/", rt.createScope) // POST /scopes - register a dimension
	}
	policyGroup := r.Group("/policies")
	{
		policyGroup.Get("/", rt.listPolicies)   // GET /policies - list restriction policies
		policyGroup.Post("/", rt.createPolicy)  // POST /policies - register a policy
	}
}

func (rt *Router) listScopes(c *fiber.Ctx) error {
	defs, err := rt.Services.Dictionary.ListScopes(c.UserContext())
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, defs)
	return nil
}

func (rt *Router) createScope(c *fiber.Ctx) error {
	var req model.CreateScopeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.ScopeKey == "" {
		return badRequest(c, "scopeKey is required")
	}
	def, err := rt.Services.Dictionary.CreateScope(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, def)
	return nil
}

func (rt *Router) listPolicies(c *fiber.Ctx) error {
	defs, err := rt.Services.Dictionary.ListPolicies(c.UserContext())
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, defs)
	return nil
}

func (rt *Router) createPolicy(c *fiber.Ctx) error {
	var req model.CreatePolicyReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request parameters")
	}
	if req.PolicyKey == "" {
		return badRequest(c, "policyKey is required")
	}
	def, err := rt.Services.Dictionary.CreatePolicy(c.UserContext(), &req)
	if err != nil {
		return repErr(c, err)
	}
	c.Locals(consts.DETAIL, def)
	return nil
}
