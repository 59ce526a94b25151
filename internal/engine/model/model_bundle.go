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

package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// 数据范围类型（Layer 2 view_type）
const (
	ViewTypeAll     = "all"      // 全部数据
	ViewTypeOwnOnly = "own_only" // 仅本人数据
	ViewTypeCustom  = "custom"   // 按组织范围 + 维度白名单过滤
)

// DataScope Layer-2 数据范围配置
// CustomFilters 的 key 为 ScopeDefinition 登记的维度，空白名单表示该维度不限制
type DataScope struct {
	ViewType      string              `json:"viewType"`
	CustomFilters map[string][]string `json:"customFilters,omitempty"`
}

// RoleBundle 权限包：功能权限（Layer 1）+ 默认数据范围（Layer 2）+ 策略开关（Layer 3）
// 独立于用户存在，可被多个用户引用；三段配置均为开放键值，存为 JSON 以保持嵌套结构
type RoleBundle struct {
	BaseModel
	BundleId       string         `gorm:"column:bundle_id;not null;uniqueIndex" json:"bundleId"`
	Name           string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description    string         `gorm:"column:description" json:"description"`
	PermissionKeys datatypes.JSON `gorm:"column:permission_keys;type:json" json:"permissionKeys"` // JSON 数组
	DataScope      datatypes.JSON `gorm:"column:data_scope;type:json" json:"dataScope"`           // DataScope 结构
	AccessPolicies datatypes.JSON `gorm:"column:access_policies;type:json" json:"accessPolicies"` // {policyKey: bool}
}

func (RoleBundle) TableName() string {
	return "t_role_bundle"
}

// PermissionKeyList 解析 permission_keys 列；脏数据返回空列表
func (b *RoleBundle) PermissionKeyList() []string {
	var keys []string
	if len(b.PermissionKeys) > 0 {
		_ = json.Unmarshal(b.PermissionKeys, &keys)
	}
	return keys
}

// Scope 解析 data_scope 列；缺省回退到 own_only（最小权限）
func (b *RoleBundle) Scope() DataScope {
	scope := DataScope{ViewType: ViewTypeOwnOnly}
	if len(b.DataScope) > 0 {
		_ = json.Unmarshal(b.DataScope, &scope)
	}
	if scope.ViewType == "" {
		scope.ViewType = ViewTypeOwnOnly
	}
	return scope
}

// PolicyFlags 解析 access_policies 列；脏数据返回空表
func (b *RoleBundle) PolicyFlags() map[string]bool {
	flags := map[string]bool{}
	if len(b.AccessPolicies) > 0 {
		_ = json.Unmarshal(b.AccessPolicies, &flags)
	}
	return flags
}

// CreateBundleReq request for creating a role bundle
type CreateBundleReq struct {
	Name           string              `json:"name" validate:"required"`
	Description    string              `json:"description"`
	PermissionKeys []string            `json:"permissionKeys"`
	DataScope      DataScope           `json:"dataScope"`
	AccessPolicies map[string]bool     `json:"accessPolicies"`
}

// UpdateBundleReq request for updating a role bundle
type UpdateBundleReq struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	PermissionKeys *[]string        `json:"permissionKeys,omitempty"`
	DataScope      *DataScope       `json:"dataScope,omitempty"`
	AccessPolicies *map[string]bool `json:"accessPolicies,omitempty"`
}

// CloneBundleReq request for cloning a role bundle
type CloneBundleReq struct {
	Name string `json:"name" validate:"required"` // 新包名称，必须唯一
}

// BundleResponse bundle with decoded configuration
type BundleResponse struct {
	BundleId       string          `json:"bundleId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PermissionKeys []string        `json:"permissionKeys"`
	DataScope      DataScope       `json:"dataScope"`
	AccessPolicies map[string]bool `json:"accessPolicies"`
}

// ToResponse decodes the JSON columns for API output
func (b *RoleBundle) ToResponse() BundleResponse {
	return BundleResponse{
		BundleId:       b.BundleId,
		Name:           b.Name,
		Description:    b.Description,
		PermissionKeys: b.PermissionKeyList(),
		DataScope:      b.Scope(),
		AccessPolicies: b.PolicyFlags(),
	}
}
