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
	"github.com/pkg/errors"

	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/internal/engine/service"
	httpx "github.com/go-sentra/sentra/pkg/http"
)

// repErr 业务错误到响应码的映射，未识别的错误一律按 Failed 返回
func repErr(c *fiber.Ctx, err error) error {
	var rep *httpx.Response
	switch {
	case errors.Is(err, service.ErrPermissionNotFound):
		rep = httpx.PermissionNotExist
	case errors.Is(err, service.ErrPermKeyTaken):
		rep = httpx.PermissionKeyTaken
	case errors.Is(err, service.ErrScopeKeyTaken), errors.Is(err, service.ErrPolicyKeyTaken):
		rep = httpx.DefinitionKeyTaken
	case errors.Is(err, service.ErrDeptNotFound):
		rep = httpx.DepartmentNotExist
	case errors.Is(err, service.ErrDeptCodeTaken):
		rep = httpx.DepartmentCodeTaken
	case errors.Is(err, repo.ErrDeptHasChildren):
		rep = httpx.DepartmentHasChildren
	case errors.Is(err, repo.ErrDeptCycle):
		rep = httpx.DepartmentCycle
	case errors.Is(err, service.ErrBundleNotFound):
		rep = httpx.BundleNotExist
	case errors.Is(err, service.ErrBundleNameTaken):
		rep = httpx.BundleNameTaken
	case errors.Is(err, service.ErrUserNotFound):
		rep = httpx.UserNotExist
	case errors.Is(err, service.ErrBadPermStatus),
		errors.Is(err, service.ErrBadViewType),
		errors.Is(err, service.ErrBadAccessLevel):
		rep = httpx.BadRequest
	default:
		return httpx.WithRepErrMsg(c, httpx.Failed.Code, err.Error(), c.Path())
	}
	return httpx.WithRepErrMsg(c, rep.Code, rep.Msg, c.Path())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return httpx.WithRepErrMsg(c, httpx.BadRequest.Code, msg, c.Path())
}
