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

// 权限点生命周期状态
const (
	PermStatusActive      = "active"      // 正常启用
	PermStatusMaintenance = "maintenance" // 维护中，检查一律拒绝
)

// PermissionDefinition 功能权限点定义（Layer 1）
// key 为点分格式，如 sales.view；status 非 active 时权限检查失败（维护期拒绝）
type PermissionDefinition struct {
	BaseModel
	PermKey string `gorm:"column:perm_key;not null;uniqueIndex" json:"permKey"`
	Module  string `gorm:"column:module;not null" json:"module"` // 所属模块，用于权限矩阵分组展示
	Label   string `gorm:"column:label" json:"label"`
	Status  string `gorm:"column:status;not null;default:active" json:"status"`
}

func (PermissionDefinition) TableName() string {
	return "t_permission_definition"
}

// CreatePermissionReq request for creating a permission definition
type CreatePermissionReq struct {
	PermKey string `json:"permKey" validate:"required"`
	Module  string `json:"module" validate:"required"`
	Label   string `json:"label"`
}

// UpdatePermissionReq request for updating a permission definition
type UpdatePermissionReq struct {
	Module *string `json:"module,omitempty"`
	Label  *string `json:"label,omitempty"`
}

// TogglePermissionStatusReq request for toggling active/maintenance
type TogglePermissionStatusReq struct {
	Status string `json:"status" validate:"required"`
}
