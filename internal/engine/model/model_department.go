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

// Department 部门（组织树节点）
// parent_id 为空表示根节点；父子关系必须无环，写入边界负责校验
type Department struct {
	BaseModel
	DeptId   string `gorm:"column:dept_id;not null;uniqueIndex" json:"deptId"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Code     string `gorm:"column:code;not null;uniqueIndex" json:"code"` // 对外编码，唯一且不可变更
	ParentId string `gorm:"column:parent_id;index" json:"parentId"`       // 为空表示根节点
}

func (Department) TableName() string {
	return "t_department"
}

// CreateDepartmentReq request for creating a department
type CreateDepartmentReq struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	ParentId string `json:"parentId"`
}

// UpdateDepartmentReq request for renaming a department
type UpdateDepartmentReq struct {
	Name *string `json:"name,omitempty"`
}

// ReparentDepartmentReq request for moving a department under a new parent
type ReparentDepartmentReq struct {
	NewParentId string `json:"newParentId"`
}

// DeleteDepartmentReq delete options; cascade removes the whole subtree
type DeleteDepartmentReq struct {
	Cascade bool `json:"cascade"`
}
