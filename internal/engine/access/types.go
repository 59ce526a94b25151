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

// Package access implements the three-layer authorization core:
// functional permissions (Layer 1), organizational data scope (Layer 2)
// and output restriction policies (Layer 3). Everything in this package
// is pure computation over already-loaded state; loading and caching is
// the service layer's job.
package access

import "github.com/go-sentra/sentra/internal/engine/model"

// 拒绝原因码
const (
	ReasonLockedUser           = "locked_user"
	ReasonPermissionDisabled   = "permission_disabled"
	ReasonPermissionNotGranted = "permission_not_granted"
	ReasonOutOfScope           = "out_of_scope"
)

// Decision 判定结果：allowed/visible 是合法取值而非错误
type Decision struct {
	Allowed        bool     `json:"allowed"`
	Visible        bool     `json:"visible"`
	ActivePolicies []string `json:"activePolicies"`
	Reason         string   `json:"reason,omitempty"`
}

// Bundle 已解码的权限包配置
type Bundle struct {
	BundleId       string
	PermissionKeys []string
	Scope          model.DataScope
	Policies       map[string]bool
}

// Assignment 一条任职记录的组织可见范围
type Assignment struct {
	DeptId      string
	AccessLevel string
}

// Subject 参与判定的用户快照
type Subject struct {
	UserId      string
	Enabled     bool
	SuperAdmin  bool
	Bundles     []Bundle
	Assignments []Assignment
}

// Record 被判定的业务记录
type Record struct {
	OwnerId    string
	DeptId     string
	Dimensions map[string]string
}

// FromBundle decodes a stored bundle into its evaluation form.
func FromBundle(b *model.RoleBundle) Bundle {
	return Bundle{
		BundleId:       b.BundleId,
		PermissionKeys: b.PermissionKeyList(),
		Scope:          b.Scope(),
		Policies:       b.PolicyFlags(),
	}
}
