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

type IUserRepository interface {
	CreateUser(user *model.UserProfile) error
	GetUser(userId string) (*model.UserProfile, error)
	ListUsers(pageNum, pageSize int) ([]model.UserProfile, int64, error)
	UpdateUser(userId string, updates map[string]any) error
	DeleteUser(userId string) error
	GetBundleIds(userId string) ([]string, error)
	SyncBundles(userId string, bundleIds []string) error
}

type UserRepo struct {
	database.IDatabase
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{
		IDatabase: db,
	}
}

// CreateUser 创建用户档案
func (r *UserRepo) CreateUser(user *model.UserProfile) error {
	if err := r.Database().Table(user.TableName()).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// GetUser 按 user_id 获取用户
func (r *UserRepo) GetUser(userId string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.Database().Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers 分页列出用户
func (r *UserRepo) ListUsers(pageNum, pageSize int) ([]model.UserProfile, int64, error) {
	var users []model.UserProfile
	var total int64
	db := r.Database().Model(&model.UserProfile{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("id").Offset((pageNum - 1) * pageSize).Limit(pageSize).Find(&users).Error
	return users, total, err
}

// UpdateUser 更新用户（锁定、超管标记等）
func (r *UserRepo) UpdateUser(userId string, updates map[string]any) error {
	return r.Database().Model(&model.UserProfile{}).
		Where("user_id = ?", userId).Updates(updates).Error
}

// DeleteUser 删除用户并级联清理绑定与任职
func (r *UserRepo) DeleteUser(userId string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userId).Delete(&model.UserProfile{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("user_id = ?", userId).
			Delete(&model.UserBundleBinding{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userId).Delete(&model.DepartmentAssignment{}).Error
	})
}

// GetBundleIds 用户当前绑定的权限包 ID
func (r *UserRepo) GetBundleIds(userId string) ([]string, error) {
	var ids []string
	err := r.Database().Model(&model.UserBundleBinding{}).
		Where("user_id = ?", userId).Pluck("bundle_id", &ids).Error
	return ids, err
}

// SyncBundles 全量替换用户的权限包绑定
func (r *UserRepo) SyncBundles(userId string, bundleIds []string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userId).
			Delete(&model.UserBundleBinding{}).Error; err != nil {
			return err
		}
		if len(bundleIds) == 0 {
			return nil
		}
		bindings := make([]model.UserBundleBinding, 0, len(bundleIds))
		for _, id := range bundleIds {
			bindings = append(bindings, model.UserBundleBinding{UserId: userId, BundleId: id})
		}
		return tx.Create(&bindings).Error
	})
}
