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

package service

import "github.com/pkg/errors"

// 业务错误哨兵，路由层据此映射响应码
var (
	ErrPermissionNotFound = errors.New("permission definition not found")
	ErrPermKeyTaken       = errors.New("permission key already registered")
	ErrBadPermStatus      = errors.New("status must be active or maintenance")

	ErrScopeKeyTaken  = errors.New("scope key already registered")
	ErrPolicyKeyTaken = errors.New("policy key already registered")

	ErrDeptNotFound  = errors.New("department not found")
	ErrDeptCodeTaken = errors.New("department code already taken")

	ErrBundleNotFound  = errors.New("bundle not found")
	ErrBundleNameTaken = errors.New("bundle name already taken")
	ErrBadViewType     = errors.New("viewType must be all, own_only or custom")

	ErrUserNotFound   = errors.New("user not found")
	ErrBadAccessLevel = errors.New("accessLevel must be own_only, department or recursive")
)
