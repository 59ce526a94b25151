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

package service

import (
	"context"

	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/pkg/id"
	"github.com/go-sentra/sentra/pkg/log"
)

type UserService struct {
	userRepo   repo.IUserRepository
	bundleRepo repo.IBundleRepository
	deptRepo   repo.IDepartmentRepository
	assignRepo repo.IAssignmentRepository
	gen        *Generation
}

func NewUserService(
	userRepo repo.IUserRepository,
	bundleRepo repo.IBundleRepository,
	deptRepo repo.IDepartmentRepository,
	assignRepo repo.IAssignmentRepository,
	gen *Generation,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		bundleRepo: bundleRepo,
		deptRepo:   deptRepo,
		assignRepo: assignRepo,
		gen:        gen,
	}
}

// CreateUser 创建用户档案，默认启用、非超管
func (us *UserService) CreateUser(ctx context.Context, req *model.CreateUserReq) (*model.UserProfile, error) {
	user := &model.UserProfile{
		UserId:    id.GetUUID(),
		Name:      req.Name,
		IsEnabled: 1,
	}
	if err := us.userRepo.CreateUser(user); err != nil {
		log.Errorw("failed to create user", "name", req.Name, "error", err)
		return nil, err
	}
	log.Infow("user created", "userId", user.UserId)
	return user, nil
}

// UserDetail 用户档案 + 当前绑定与任职
type UserDetail struct {
	model.UserProfile
	BundleIds   []string                     `json:"bundleIds"`
	Assignments []model.DepartmentAssignment `json:"assignments"`
}

// GetUser 获取用户详情
func (us *UserService) GetUser(ctx context.Context, userId string) (*UserDetail, error) {
	user, err := us.userRepo.GetUser(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}
	bundleIds, err := us.userRepo.GetBundleIds(userId)
	if err != nil {
		return nil, err
	}
	assignments, err := us.assignRepo.GetAssignments(userId)
	if err != nil {
		return nil, err
	}
	return &UserDetail{
		UserProfile: *user,
		BundleIds:   bundleIds,
		Assignments: assignments,
	}, nil
}

// ListUsers 分页列出用户
func (us *UserService) ListUsers(ctx context.Context, pageNum, pageSize int) ([]model.UserProfile, int64, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return us.userRepo.ListUsers(pageNum, pageSize)
}

// SyncBundles 全量替换用户的权限包绑定，引用的包必须全部存在
func (us *UserService) SyncBundles(ctx context.Context, userId string, req *model.SyncUserBundlesReq) error {
	if _, err := us.userRepo.GetUser(userId); err != nil {
		return ErrUserNotFound
	}
	if len(req.BundleIds) > 0 {
		bundles, err := us.bundleRepo.GetBundlesByBundleIds(req.BundleIds)
		if err != nil {
			return err
		}
		if len(bundles) != len(req.BundleIds) {
			return ErrBundleNotFound
		}
	}
	if err := us.userRepo.SyncBundles(userId, req.BundleIds); err != nil {
		log.Errorw("failed to sync user bundles", "userId", userId, "error", err)
		return err
	}
	us.gen.Bump(ctx)
	log.Infow("user bundles synced", "userId", userId, "count", len(req.BundleIds))
	return nil
}

// SyncAssignments 全量替换用户的任职集合
func (us *UserService) SyncAssignments(ctx context.Context, userId string, req *model.SyncAssignmentsReq) error {
	if _, err := us.userRepo.GetUser(userId); err != nil {
		return ErrUserNotFound
	}
	for _, item := range req.Assignments {
		switch item.AccessLevel {
		case model.AccessLevelOwnOnly, model.AccessLevelDepartment, model.AccessLevelRecursive:
		default:
			return ErrBadAccessLevel
		}
		if _, err := us.deptRepo.GetDepartment(item.DeptId); err != nil {
			return ErrDeptNotFound
		}
	}
	if err := us.assignRepo.SyncAssignments(userId, req.Assignments); err != nil {
		log.Errorw("failed to sync assignments", "userId", userId, "error", err)
		return err
	}
	us.gen.Bump(ctx)
	log.Infow("user assignments synced", "userId", userId, "count", len(req.Assignments))
	return nil
}

// LockUser 锁定/解锁；锁定即时生效，下一次判定就会被拒
func (us *UserService) LockUser(ctx context.Context, userId string, req *model.LockUserReq) error {
	if _, err := us.userRepo.GetUser(userId); err != nil {
		return ErrUserNotFound
	}
	enabled := 0
	if req.IsEnabled != 0 {
		enabled = 1
	}
	if err := us.userRepo.UpdateUser(userId, map[string]any{"is_enabled": enabled}); err != nil {
		return err
	}
	us.gen.Bump(ctx)
	log.Infow("user lock toggled", "userId", userId, "isEnabled", enabled)
	return nil
}

// SetSuperAdmin 超管标记只能走这个专用入口，权限包编辑永远碰不到它
func (us *UserService) SetSuperAdmin(ctx context.Context, userId string, req *model.SetSuperAdminReq) error {
	if _, err := us.userRepo.GetUser(userId); err != nil {
		return ErrUserNotFound
	}
	flag := 0
	if req.IsSuperAdmin {
		flag = 1
	}
	if err := us.userRepo.UpdateUser(userId, map[string]any{"is_superadmin": flag}); err != nil {
		return err
	}
	us.gen.Bump(ctx)
	log.Infow("super admin flag changed", "userId", userId, "isSuperAdmin", flag)
	return nil
}

// DeleteUser 删除用户并级联清理绑定与任职
func (us *UserService) DeleteUser(ctx context.Context, userId string) error {
	if err := us.userRepo.DeleteUser(userId); err != nil {
		return ErrUserNotFound
	}
	us.gen.Bump(ctx)
	log.Infow("user deleted", "userId", userId)
	return nil
}
