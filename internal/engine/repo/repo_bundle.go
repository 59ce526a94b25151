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

type IBundleRepository interface {
	CreateBundle(bundle *model.RoleBundle) error
	GetBundle(bundleId string) (*model.RoleBundle, error)
	GetBundlesByBundleIds(bundleIds []string) ([]model.RoleBundle, error)
	ListBundles(pageNum, pageSize int) ([]model.RoleBundle, int64, error)
	UpdateBundle(bundleId string, updates map[string]any) error
	DeleteBundle(bundleId string) error
	CountName(name string) (int64, error)
	CountBindings(bundleId string) (int64, error)
}

type BundleRepo struct {
	database.IDatabase
}

func NewBundleRepo(db database.IDatabase) IBundleRepository {
	return &BundleRepo{
		IDatabase: db,
	}
}

// CreateBundle 创建权限包
func (r *BundleRepo) CreateBundle(bundle *model.RoleBundle) error {
	if err := r.Database().Table(bundle.TableName()).Create(bundle).Error; err != nil {
		return err
	}
	return nil
}

// GetBundle 按 bundle_id 获取权限包
func (r *BundleRepo) GetBundle(bundleId string) (*model.RoleBundle, error) {
	var bundle model.RoleBundle
	err := r.Database().Where("bundle_id = ?", bundleId).First(&bundle).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

// GetBundlesByBundleIds 按 ID 列表批量获取，判定快照使用
func (r *BundleRepo) GetBundlesByBundleIds(bundleIds []string) ([]model.RoleBundle, error) {
	if len(bundleIds) == 0 {
		return []model.RoleBundle{}, nil
	}
	var bundles []model.RoleBundle
	err := r.Database().Where("bundle_id IN ?", bundleIds).Find(&bundles).Error
	return bundles, err
}

// ListBundles 分页列出权限包
func (r *BundleRepo) ListBundles(pageNum, pageSize int) ([]model.RoleBundle, int64, error) {
	var bundles []model.RoleBundle
	var total int64
	db := r.Database().Model(&model.RoleBundle{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("id").Offset((pageNum - 1) * pageSize).Limit(pageSize).Find(&bundles).Error
	return bundles, total, err
}

// UpdateBundle 更新权限包
func (r *BundleRepo) UpdateBundle(bundleId string, updates map[string]any) error {
	return r.Database().Model(&model.RoleBundle{}).
		Where("bundle_id = ?", bundleId).Updates(updates).Error
}

// DeleteBundle 删除权限包并级联清理用户绑定，同一事务内完成
// 不存在引用了已删除包的绑定这种中间状态
func (r *BundleRepo) DeleteBundle(bundleId string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		res := tx.Where("bundle_id = ?", bundleId).Delete(&model.RoleBundle{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("bundle_id = ?", bundleId).Delete(&model.UserBundleBinding{}).Error
	})
}

// CountName 用于创建/克隆前的名称唯一性检查
func (r *BundleRepo) CountName(name string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.RoleBundle{}).
		Where("name = ?", name).Count(&count).Error
	return count, err
}

// CountBindings 引用该包的用户数
func (r *BundleRepo) CountBindings(bundleId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.UserBundleBinding{}).
		Where("bundle_id = ?", bundleId).Count(&count).Error
	return count, err
}
