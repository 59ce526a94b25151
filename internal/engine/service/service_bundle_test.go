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

func newBundleService() (*BundleService, *fakeBundleRepo, *fakeCache) {
	cache := newFakeCache()
	bundleRepo := newFakeBundleRepo()
	return NewBundleService(bundleRepo, NewGeneration(cache)), bundleRepo, cache
}

func TestBundleService_CreateAndGet(t *testing.T) {
	bs, _, cache := newBundleService()
	ctx := context.Background()

	resp, err := bs.CreateBundle(ctx, &model.CreateBundleReq{
		Name:           "sales-lead",
		PermissionKeys: []string{"order.view", "order.export"},
		DataScope:      model.DataScope{ViewType: model.ViewTypeCustom, CustomFilters: map[string][]string{"region": {"north"}}},
		AccessPolicies: map[string]bool{"mask_phone": true},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BundleId)

	got, err := bs.GetBundle(ctx, resp.BundleId)
	require.NoError(t, err)
	assert.Equal(t, []string{"order.view", "order.export"}, got.PermissionKeys)
	assert.Equal(t, model.ViewTypeCustom, got.DataScope.ViewType)
	assert.True(t, got.AccessPolicies["mask_phone"])

	// 管理写操作必须使判定快照失效
	assert.Equal(t, int64(1), cache.counters[generationKey])

	_, err = bs.CreateBundle(ctx, &model.CreateBundleReq{Name: "sales-lead"})
	assert.ErrorIs(t, err, ErrBundleNameTaken)
}

func TestBundleService_CreateRejectsBadViewType(t *testing.T) {
	bs, _, _ := newBundleService()

	_, err := bs.CreateBundle(context.Background(), &model.CreateBundleReq{
		Name:      "broken",
		DataScope: model.DataScope{ViewType: "everything"},
	})
	assert.ErrorIs(t, err, ErrBadViewType)
}

// 克隆出的包与原包完全独立，改其一不动其二
func TestBundleService_CloneIsIndependent(t *testing.T) {
	bs, _, _ := newBundleService()
	ctx := context.Background()

	src, err := bs.CreateBundle(ctx, &model.CreateBundleReq{
		Name:           "original",
		PermissionKeys: []string{"order.view"},
		DataScope:      model.DataScope{ViewType: model.ViewTypeOwnOnly},
		AccessPolicies: map[string]bool{"forbid_export": true},
	})
	require.NoError(t, err)

	clone, err := bs.CloneBundle(ctx, src.BundleId, &model.CloneBundleReq{Name: "copy"})
	require.NoError(t, err)
	assert.NotEqual(t, src.BundleId, clone.BundleId)
	assert.Equal(t, src.PermissionKeys, clone.PermissionKeys)
	assert.Equal(t, src.DataScope, clone.DataScope)
	assert.Equal(t, src.AccessPolicies, clone.AccessPolicies)

	// 改克隆不影响原包
	keys := []string{"order.view", "order.refund"}
	err = bs.UpdateBundle(ctx, clone.BundleId, &model.UpdateBundleReq{PermissionKeys: &keys})
	require.NoError(t, err)

	srcAgain, err := bs.GetBundle(ctx, src.BundleId)
	require.NoError(t, err)
	assert.Equal(t, []string{"order.view"}, srcAgain.PermissionKeys)

	// 克隆不能占用已有名称
	_, err = bs.CloneBundle(ctx, src.BundleId, &model.CloneBundleReq{Name: "copy"})
	assert.ErrorIs(t, err, ErrBundleNameTaken)
}

// 删包同时解绑全部引用用户
func TestBundleService_DeleteUnbindsUsers(t *testing.T) {
	bs, bundleRepo, _ := newBundleService()
	ctx := context.Background()

	resp, err := bs.CreateBundle(ctx, &model.CreateBundleReq{Name: "doomed"})
	require.NoError(t, err)
	bundleRepo.bindings["u1"] = []string{resp.BundleId, "other"}
	bundleRepo.bindings["u2"] = []string{resp.BundleId}

	require.NoError(t, bs.DeleteBundle(ctx, resp.BundleId))

	assert.Equal(t, []string{"other"}, bundleRepo.bindings["u1"])
	assert.Empty(t, bundleRepo.bindings["u2"])

	err = bs.DeleteBundle(ctx, resp.BundleId)
	assert.ErrorIs(t, err, ErrBundleNotFound)
}
