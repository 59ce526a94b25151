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
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/go-sentra/sentra/internal/engine/access"
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/pkg/database"
)

// ErrDeptHasChildren 非级联删除遇到仍有下级的部门
var ErrDeptHasChildren = errors.New("department still has children")

// ErrDeptCycle 换父会让部门成为自己的祖先
var ErrDeptCycle = errors.New("reparent would create a cycle")

type IDepartmentRepository interface {
	CreateDepartment(dept *model.Department) error
	GetDepartment(deptId string) (*model.Department, error)
	ListDepartments() ([]model.Department, error)
	UpdateDepartment(deptId string, updates map[string]any) error
	ReparentDepartment(deptId, newParentId string) error
	DeleteDepartment(deptId string, cascade bool) error
	CountCode(code string) (int64, error)
	CountChildren(deptId string) (int64, error)
}

type DepartmentRepo struct {
	database.IDatabase
}

func NewDepartmentRepo(db database.IDatabase) IDepartmentRepository {
	return &DepartmentRepo{
		IDatabase: db,
	}
}

// CreateDepartment 创建部门
func (r *DepartmentRepo) CreateDepartment(dept *model.Department) error {
	if err := r.Database().Table(dept.TableName()).Create(dept).Error; err != nil {
		return err
	}
	return nil
}

// GetDepartment 按 dept_id 获取部门
func (r *DepartmentRepo) GetDepartment(deptId string) (*model.Department, error) {
	var dept model.Department
	err := r.Database().Where("dept_id = ?", deptId).First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// ListDepartments 全量部门，树由调用方组装
func (r *DepartmentRepo) ListDepartments() ([]model.Department, error) {
	var depts []model.Department
	err := r.Database().Order("id").Find(&depts).Error
	return depts, err
}

// UpdateDepartment 更新部门（name）；code 不可变更，不走此入口
func (r *DepartmentRepo) UpdateDepartment(deptId string, updates map[string]any) error {
	return r.Database().Model(&model.Department{}).
		Where("dept_id = ?", deptId).Updates(updates).Error
}

// ReparentDepartment 换父
// 事务内对整表加写锁后重新做环检测，防止并发 reparent 拼出环
func (r *DepartmentRepo) ReparentDepartment(deptId, newParentId string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		var depts []model.Department
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Find(&depts).Error; err != nil {
			return err
		}
		tree := access.NewTree(depts)
		if !tree.Exists(deptId) {
			return gorm.ErrRecordNotFound
		}
		if newParentId != "" && !tree.Exists(newParentId) {
			return gorm.ErrRecordNotFound
		}
		cycle, err := tree.WouldCreateCycle(deptId, newParentId)
		if err != nil {
			return err
		}
		if cycle {
			return errors.WithStack(ErrDeptCycle)
		}
		return tx.Model(&model.Department{}).
			Where("dept_id = ?", deptId).Update("parent_id", newParentId).Error
	})
}

// DeleteDepartment 删除部门
// 默认拒绝删除仍有下级的部门；cascade 时整棵子树与其任职记录一并清理
func (r *DepartmentRepo) DeleteDepartment(deptId string, cascade bool) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		var depts []model.Department
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Find(&depts).Error; err != nil {
			return err
		}
		tree := access.NewTree(depts)
		if !tree.Exists(deptId) {
			return gorm.ErrRecordNotFound
		}
		desc, err := tree.DescendantsOf(deptId)
		if err != nil {
			return err
		}
		if len(desc) > 0 && !cascade {
			return errors.WithStack(ErrDeptHasChildren)
		}
		targets := make([]string, 0, len(desc)+1)
		targets = append(targets, deptId)
		for id := range desc {
			targets = append(targets, id)
		}
		if err := tx.Where("dept_id IN ?", targets).
			Delete(&model.DepartmentAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("dept_id IN ?", targets).Delete(&model.Department{}).Error
	})
}

// CountCode 用于创建前的编码唯一性检查
func (r *DepartmentRepo) CountCode(code string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.Department{}).
		Where("code = ?", code).Count(&count).Error
	return count, err
}

// CountChildren 直接下级数量
func (r *DepartmentRepo) CountChildren(deptId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.Department{}).
		Where("parent_id = ?", deptId).Count(&count).Error
	return count, err
}
