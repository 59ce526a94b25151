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
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/pkg/id"
	"github.com/go-sentra/sentra/pkg/log"
)

type BundleService struct {
	bundleRepo repo.IBundleRepository
	gen        *Generation
}

func NewBundleService(bundleRepo repo.IBundleRepository, gen *Generation) *BundleService {
	return &BundleService{
		bundleRepo: bundleRepo,
		gen:        gen,
	}
}

func validViewType(v string) bool {
	return v == "" || v == model.ViewTypeAll || v == model.ViewTypeOwnOnly || v == model.ViewTypeCustom
}

// CreateBundle 创建权限包
// 三段配置分别序列化为 JSON 列；未登记的 key 原样保存，判定层负责忽略
func (bs *BundleService) CreateBundle(ctx context.Context, req *model.CreateBundleReq) (*model.BundleResponse, error) {
	count, err := bs.bundleRepo.CountName(req.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrBundleNameTaken
	}
	if !validViewType(req.DataScope.ViewType) {
		return nil, ErrBadViewType
	}
	bundle := &model.RoleBundle{
		BundleId:    id.GetUUID(),
		Name:        req.Name,
		Description: req.Description,
	}
	if bundle.PermissionKeys, err = json.Marshal(req.PermissionKeys); err != nil {
		return nil, err
	}
	if bundle.DataScope, err = json.Marshal(req.DataScope); err != nil {
		return nil, err
	}
	if bundle.AccessPolicies, err = json.Marshal(req.AccessPolicies); err != nil {
		return nil, err
	}
	if err := bs.bundleRepo.CreateBundle(bundle); err != nil {
		log.Errorw("failed to create bundle", "name", req.Name, "error", err)
		return nil, err
	}
	bs.gen.Bump(ctx)
	log.Infow("bundle created", "bundleId", bundle.BundleId, "name", bundle.Name)
	resp := bundle.ToResponse()
	return &resp, nil
}

// GetBundle 获取权限包详情（JSON 列已解码）
func (bs *BundleService) GetBundle(ctx context.Context, bundleId string) (*model.BundleResponse, error) {
	bundle, err := bs.bundleRepo.GetBundle(bundleId)
	if err != nil {
		return nil, ErrBundleNotFound
	}
	resp := bundle.ToResponse()
	return &resp, nil
}

// ListBundles 分页列出权限包
func (bs *BundleService) ListBundles(ctx context.Context, pageNum, pageSize int) ([]model.BundleResponse, int64, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	bundles, total, err := bs.bundleRepo.ListBundles(pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]model.BundleResponse, 0, len(bundles))
	for i := range bundles {
		out = append(out, bundles[i].ToResponse())
	}
	return out, total, nil
}

// UpdateBundle 更新权限包，省略的字段保持不变
func (bs *BundleService) UpdateBundle(ctx context.Context, bundleId string, req *model.UpdateBundleReq) error {
	bundle, err := bs.bundleRepo.GetBundle(bundleId)
	if err != nil {
		return ErrBundleNotFound
	}
	updates := map[string]any{}
	if req.Name != nil && *req.Name != bundle.Name {
		count, err := bs.bundleRepo.CountName(*req.Name)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrBundleNameTaken
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PermissionKeys != nil {
		raw, err := json.Marshal(*req.PermissionKeys)
		if err != nil {
			return err
		}
		updates["permission_keys"] = raw
	}
	if req.DataScope != nil {
		if !validViewType(req.DataScope.ViewType) {
			return ErrBadViewType
		}
		raw, err := json.Marshal(*req.DataScope)
		if err != nil {
			return err
		}
		updates["data_scope"] = raw
	}
	if req.AccessPolicies != nil {
		raw, err := json.Marshal(*req.AccessPolicies)
		if err != nil {
			return err
		}
		updates["access_policies"] = raw
	}
	if len(updates) == 0 {
		return nil
	}
	if err := bs.bundleRepo.UpdateBundle(bundleId, updates); err != nil {
		return err
	}
	bs.gen.Bump(ctx)
	log.Infow("bundle updated", "bundleId", bundleId)
	return nil
}

// CloneBundle 克隆权限包：三段配置逐字节拷贝，新身份、新名称
// 克隆完成后两个包彼此独立，修改互不影响
func (bs *BundleService) CloneBundle(ctx context.Context, bundleId string, req *model.CloneBundleReq) (*model.BundleResponse, error) {
	src, err := bs.bundleRepo.GetBundle(bundleId)
	if err != nil {
		return nil, ErrBundleNotFound
	}
	count, err := bs.bundleRepo.CountName(req.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrBundleNameTaken
	}
	clone := &model.RoleBundle{
		BundleId:       id.GetUUID(),
		Name:           req.Name,
		Description:    src.Description,
		PermissionKeys: append(src.PermissionKeys[:0:0], src.PermissionKeys...),
		DataScope:      append(src.DataScope[:0:0], src.DataScope...),
		AccessPolicies: append(src.AccessPolicies[:0:0], src.AccessPolicies...),
	}
	if err := bs.bundleRepo.CreateBundle(clone); err != nil {
		log.Errorw("failed to clone bundle", "bundleId", bundleId, "error", err)
		return nil, err
	}
	bs.gen.Bump(ctx)
	log.Infow("bundle cloned", "sourceBundleId", bundleId, "bundleId", clone.BundleId)
	resp := clone.ToResponse()
	return &resp, nil
}

// DeleteBundle 删除权限包并级联解绑全部用户，同一事务内完成
func (bs *BundleService) DeleteBundle(ctx context.Context, bundleId string) error {
	bindings, err := bs.bundleRepo.CountBindings(bundleId)
	if err != nil {
		return err
	}
	if err := bs.bundleRepo.DeleteBundle(bundleId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBundleNotFound
		}
		return err
	}
	bs.gen.Bump(ctx)
	log.Infow("bundle deleted", "bundleId", bundleId, "unboundUsers", bindings)
	return nil
}
