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
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/pkg/database"
)

type IPermissionRepository interface {
	CreateDefinition(def *model.PermissionDefinition) error
	GetDefinition(permKey string) (*model.PermissionDefinition, error)
	ListDefinitions() ([]model.PermissionDefinition, error)
	ListDefinitionsByModule(module string) ([]model.PermissionDefinition, error)
	UpdateDefinition(permKey string, updates map[string]any) error
	CountKey(permKey string) (int64, error)
}

type PermissionRepo struct {
	database.IDatabase
}

func NewPermissionRepo(db database.IDatabase) IPermissionRepository {
	return &PermissionRepo{
		IDatabase: db,
	}
}

// CreateDefinition 登记权限点
func (r *PermissionRepo) CreateDefinition(def *model.PermissionDefinition) error {
	if err := r.Database().Table(def.TableName()).Create(def).Error; err != nil {
		return err
	}
	return nil
}

// GetDefinition 按 perm_key 获取权限点
func (r *PermissionRepo) GetDefinition(permKey string) (*model.PermissionDefinition, error) {
	var def model.PermissionDefinition
	err := r.Database().Where("perm_key = ?", permKey).First(&def).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ListDefinitions 全量权限点，权限矩阵与判定快照共用
func (r *PermissionRepo) ListDefinitions() ([]model.PermissionDefinition, error) {
	var defs []model.PermissionDefinition
	err := r.Database().Order("module, perm_key").Find(&defs).Error
	return defs, err
}

// ListDefinitionsByModule 按业务模块过滤
func (r *PermissionRepo) ListDefinitionsByModule(module string) ([]model.PermissionDefinition, error) {
	var defs []model.PermissionDefinition
	err := r.Database().Where("module = ?", module).Order("perm_key").Find(&defs).Error
	return defs, err
}

// UpdateDefinition 更新权限点（label/status），perm_key 不可变更
func (r *PermissionRepo) UpdateDefinition(permKey string, updates map[string]any) error {
	return r.Database().Model(&model.PermissionDefinition{}).
		Where("perm_key = ?", permKey).Updates(updates).Error
}

// CountKey 用于创建前的唯一性检查
func (r *PermissionRepo) CountKey(permKey string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.PermissionDefinition{}).
		Where("perm_key = ?", permKey).Count(&count).Error
	return count, err
}
