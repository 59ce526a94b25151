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

// ScopeDefinition 数据范围维度定义（Layer 2）
// 由管理员动态登记，如 branches / warehouses / banks；引擎不硬编码任何维度
type ScopeDefinition struct {
	BaseModel
	ScopeKey string `gorm:"column:scope_key;not null;uniqueIndex" json:"scopeKey"`
	Label    string `gorm:"column:label" json:"label"`
	Module   string `gorm:"column:module" json:"module"`
}

func (ScopeDefinition) TableName() string {
	return "t_scope_definition"
}

// PolicyDefinition 输出限制策略定义（Layer 3）
// 如 block_excel / mask_phone；布尔限制，由管理员动态登记
type PolicyDefinition struct {
	BaseModel
	PolicyKey   string `gorm:"column:policy_key;not null;uniqueIndex" json:"policyKey"`
	Label       string `gorm:"column:label" json:"label"`
	Description string `gorm:"column:description" json:"description"`
}

func (PolicyDefinition) TableName() string {
	return "t_policy_definition"
}

// CreateScopeReq request for creating a scope definition
type CreateScopeReq struct {
	ScopeKey string `json:"scopeKey" validate:"required"`
	Label    string `json:"label"`
	Module   string `json:"module"`
}

// CreatePolicyReq request for creating a policy definition
type CreatePolicyReq struct {
	PolicyKey   string `json:"policyKey" validate:"required"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
