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

package repo

import (
	"gorm.io/gorm"

	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/pkg/database"
)

type IAssignmentRepository interface {
	GetAssignments(userId string) ([]model.DepartmentAssignment, error)
	GetAssignmentsByDept(deptId string) ([]model.DepartmentAssignment, error)
	SyncAssignments(userId string, items []model.AssignmentItem) error
}

type AssignmentRepo struct {
	database.IDatabase
}

func NewAssignmentRepo(db database.IDatabase) IAssignmentRepository {
	return &AssignmentRepo{
		IDatabase: db,
	}
}

// GetAssignments 用户的全部任职
func (r *AssignmentRepo) GetAssignments(userId string) ([]model.DepartmentAssignment, error) {
	var items []model.DepartmentAssignment
	err := r.Database().Where("user_id = ?", userId).Order("id").Find(&items).Error
	return items, err
}

// GetAssignmentsByDept 部门下的全部任职
func (r *AssignmentRepo) GetAssignmentsByDept(deptId string) ([]model.DepartmentAssignment, error) {
	var items []model.DepartmentAssignment
	err := r.Database().Where("dept_id = ?", deptId).Order("id").Find(&items).Error
	return items, err
}

// SyncAssignments 全量替换用户的任职集合
func (r *AssignmentRepo) SyncAssignments(userId string, items []model.AssignmentItem) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userId).
			Delete(&model.DepartmentAssignment{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]model.DepartmentAssignment, 0, len(items))
		for _, item := range items {
			rows = append(rows, model.DepartmentAssignment{
				UserId:      userId,
				DeptId:      item.DeptId,
				AccessLevel: item.AccessLevel,
				Position:    item.Position,
			})
		}
		return tx.Create(&rows).Error
	})
}
