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

// 任职范围级别（Layer 2 组织可见性）
const (
	AccessLevelOwnOnly    = "own_only"   // 仅本人数据
	AccessLevelDepartment = "department" // 本部门数据
	AccessLevelRecursive  = "recursive"  // 本部门及全部下级部门数据
)

// DepartmentAssignment 用户任职记录
// 同一用户可在多个部门任职（兼任），(user_id, dept_id) 唯一；position 仅作展示
type DepartmentAssignment struct {
	BaseModel
	UserId      string `gorm:"column:user_id;not null;uniqueIndex:uk_user_dept" json:"userId"`
	DeptId      string `gorm:"column:dept_id;not null;uniqueIndex:uk_user_dept" json:"deptId"`
	AccessLevel string `gorm:"column:access_level;not null;default:own_only" json:"accessLevel"`
	Position    string `gorm:"column:position" json:"position"`
}

func (DepartmentAssignment) TableName() string {
	return "t_department_assignment"
}

// AssignmentItem one assignment in a sync request
type AssignmentItem struct {
	DeptId      string `json:"deptId" validate:"required"`
	AccessLevel string `json:"accessLevel" validate:"required"`
	Position    string `json:"position"`
}

// SyncAssignmentsReq 全量同步用户的任职集合
type SyncAssignmentsReq struct {
	Assignments []AssignmentItem `json:"assignments"`
}
