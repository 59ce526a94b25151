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

// UserProfile 用户档案
// is_enabled=0 的用户一律拒绝；is_super_admin 绕过整个引擎，只能通过专用接口修改，
// 权限包编辑永远不会影响该标记
type UserProfile struct {
	BaseModel
	UserId       string `gorm:"column:user_id;not null;uniqueIndex" json:"userId"`
	Name         string `gorm:"column:name;not null" json:"name"`
	IsEnabled    int    `gorm:"column:is_enabled;not null;default:1" json:"isEnabled"`          // 0: locked, 1: enabled
	IsSuperAdmin int    `gorm:"column:is_superadmin;not null;default:0" json:"isSuperAdmin"` // 0: normal, 1: super admin
}

func (UserProfile) TableName() string {
	return "t_user_profile"
}

// UserBundleBinding 用户与权限包的绑定（join 记录）
// 任一端删除时必须级联清理
type UserBundleBinding struct {
	BaseModel
	UserId   string `gorm:"column:user_id;not null;uniqueIndex:uk_user_bundle" json:"userId"`
	BundleId string `gorm:"column:bundle_id;not null;uniqueIndex:uk_user_bundle" json:"bundleId"`
}

func (UserBundleBinding) TableName() string {
	return "t_user_bundle"
}

// CreateUserReq request for creating a user profile
type CreateUserReq struct {
	Name string `json:"name" validate:"required"`
}

// SyncUserBundlesReq 全量同步用户的权限包集合
type SyncUserBundlesReq struct {
	BundleIds []string `json:"bundleIds"`
}

// LockUserReq request for locking/unlocking a user
type LockUserReq struct {
	IsEnabled int `json:"isEnabled"`
}

// SetSuperAdminReq request for the dedicated super admin toggle
type SetSuperAdminReq struct {
	IsSuperAdmin bool `json:"isSuperAdmin"`
}
