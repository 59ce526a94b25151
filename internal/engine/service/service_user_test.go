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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sentra/sentra/internal/engine/model"
)

func newUserService() (*UserService, *accessFixture) {
	f := newAccessFixture()
	return NewUserService(f.userRepo, f.bundleRepo, f.deptRepo, f.assignRepo, f.gen), f
}

func TestUserService_SyncBundlesValidatesIds(t *testing.T) {
	us, f := newUserService()
	ctx := context.Background()

	_ = f.userRepo.CreateUser(&model.UserProfile{UserId: "u1", IsEnabled: 1})
	f.addBundle(t, "b1", nil, model.DataScope{}, nil)

	require.NoError(t, us.SyncBundles(ctx, "u1", &model.SyncUserBundlesReq{BundleIds: []string{"b1"}}))
	assert.Equal(t, []string{"b1"}, f.userRepo.bindings["u1"])

	err := us.SyncBundles(ctx, "u1", &model.SyncUserBundlesReq{BundleIds: []string{"b1", "missing"}})
	assert.ErrorIs(t, err, ErrBundleNotFound)

	// 空集合即清空绑定
	require.NoError(t, us.SyncBundles(ctx, "u1", &model.SyncUserBundlesReq{}))
	assert.Empty(t, f.userRepo.bindings["u1"])
}

func TestUserService_SyncAssignmentsValidates(t *testing.T) {
	us, f := newUserService()
	ctx := context.Background()

	_ = f.userRepo.CreateUser(&model.UserProfile{UserId: "u1", IsEnabled: 1})
	_ = f.deptRepo.CreateDepartment(&model.Department{DeptId: "d1", Code: "D1"})

	err := us.SyncAssignments(ctx, "u1", &model.SyncAssignmentsReq{
		Assignments: []model.AssignmentItem{{DeptId: "d1", AccessLevel: "everything"}},
	})
	assert.ErrorIs(t, err, ErrBadAccessLevel)

	err = us.SyncAssignments(ctx, "u1", &model.SyncAssignmentsReq{
		Assignments: []model.AssignmentItem{{DeptId: "nope", AccessLevel: model.AccessLevelDepartment}},
	})
	assert.ErrorIs(t, err, ErrDeptNotFound)

	require.NoError(t, us.SyncAssignments(ctx, "u1", &model.SyncAssignmentsReq{
		Assignments: []model.AssignmentItem{{DeptId: "d1", AccessLevel: model.AccessLevelRecursive, Position: "manager"}},
	}))
	got, _ := f.assignRepo.GetAssignments("u1")
	require.Len(t, got, 1)
	assert.Equal(t, model.AccessLevelRecursive, got[0].AccessLevel)
}

// 超管标记只能通过专用入口修改，权限包同步不会影响它
func TestUserService_SuperAdminIsolatedFromBundles(t *testing.T) {
	us, f := newUserService()
	ctx := context.Background()

	_ = f.userRepo.CreateUser(&model.UserProfile{UserId: "u1", IsEnabled: 1})
	require.NoError(t, us.SetSuperAdmin(ctx, "u1", &model.SetSuperAdminReq{IsSuperAdmin: true}))

	f.addBundle(t, "b1", nil, model.DataScope{}, nil)
	require.NoError(t, us.SyncBundles(ctx, "u1", &model.SyncUserBundlesReq{BundleIds: []string{"b1"}}))
	require.NoError(t, us.SyncBundles(ctx, "u1", &model.SyncUserBundlesReq{}))

	user, err := f.userRepo.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.IsSuperAdmin)
}

func TestDepartmentService_Tree(t *testing.T) {
	f := newAccessFixture()
	ds := NewDepartmentService(f.deptRepo, f.assignRepo, f.gen)
	ctx := context.Background()

	root, err := ds.CreateDepartment(ctx, &model.CreateDepartmentReq{Name: "HQ", Code: "HQ"})
	require.NoError(t, err)
	child, err := ds.CreateDepartment(ctx, &model.CreateDepartmentReq{Name: "Sales", Code: "S", ParentId: root.DeptId})
	require.NoError(t, err)

	_, err = ds.CreateDepartment(ctx, &model.CreateDepartmentReq{Name: "Dup", Code: "HQ"})
	assert.ErrorIs(t, err, ErrDeptCodeTaken)

	_, err = ds.CreateDepartment(ctx, &model.CreateDepartmentReq{Name: "Orphan", Code: "O", ParentId: "missing"})
	assert.ErrorIs(t, err, ErrDeptNotFound)

	tree, err := ds.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.DeptId, tree[0].DeptId)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child.DeptId, tree[0].Children[0].DeptId)
}
