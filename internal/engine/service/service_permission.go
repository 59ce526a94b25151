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
	"github.com/go-sentra/sentra/pkg/log"
)

type PermissionService struct {
	permRepo repo.IPermissionRepository
	gen      *Generation
}

func NewPermissionService(permRepo repo.IPermissionRepository, gen *Generation) *PermissionService {
	return &PermissionService{
		permRepo: permRepo,
		gen:      gen,
	}
}

// CreateDefinition 登记权限点，perm_key 全局唯一
func (ps *PermissionService) CreateDefinition(ctx context.Context, req *model.CreatePermissionReq) (*model.PermissionDefinition, error) {
	count, err := ps.permRepo.CountKey(req.PermKey)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPermKeyTaken
	}
	def := &model.PermissionDefinition{
		PermKey: req.PermKey,
		Module:  req.Module,
		Label:   req.Label,
		Status:  model.PermStatusActive,
	}
	if err := ps.permRepo.CreateDefinition(def); err != nil {
		log.Errorw("failed to create permission definition", "permKey", req.PermKey, "error", err)
		return nil, err
	}
	ps.gen.Bump(ctx)
	log.Infow("permission definition created", "permKey", def.PermKey, "module", def.Module)
	return def, nil
}

// UpdateDefinition 更新展示属性；perm_key 不可变更
func (ps *PermissionService) UpdateDefinition(ctx context.Context, permKey string, req *model.UpdatePermissionReq) error {
	if _, err := ps.permRepo.GetDefinition(permKey); err != nil {
		return ErrPermissionNotFound
	}
	updates := map[string]any{}
	if req.Module != nil {
		updates["module"] = *req.Module
	}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if len(updates) == 0 {
		return nil
	}
	if err := ps.permRepo.UpdateDefinition(permKey, updates); err != nil {
		return err
	}
	ps.gen.Bump(ctx)
	return nil
}

// ToggleStatus 切换 active/maintenance
// maintenance 立即对所有用户生效：该权限点的一切检查都会失败
func (ps *PermissionService) ToggleStatus(ctx context.Context, permKey string, req *model.TogglePermissionStatusReq) error {
	if req.Status != model.PermStatusActive && req.Status != model.PermStatusMaintenance {
		return ErrBadPermStatus
	}
	if _, err := ps.permRepo.GetDefinition(permKey); err != nil {
		return ErrPermissionNotFound
	}
	if err := ps.permRepo.UpdateDefinition(permKey, map[string]any{"status": req.Status}); err != nil {
		return err
	}
	ps.gen.Bump(ctx)
	log.Infow("permission status toggled", "permKey", permKey, "status", req.Status)
	return nil
}

// ModuleGroup 权限矩阵中的一个模块分组
type ModuleGroup struct {
	Module      string                       `json:"module"`
	Permissions []model.PermissionDefinition `json:"permissions"`
}

// Matrix 按模块分组的权限矩阵，供管理界面渲染
func (ps *PermissionService) Matrix(ctx context.Context) ([]ModuleGroup, error) {
	defs, err := ps.permRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}
	groups := make([]ModuleGroup, 0)
	idx := map[string]int{}
	for _, def := range defs {
		i, ok := idx[def.Module]
		if !ok {
			i = len(groups)
			idx[def.Module] = i
			groups = append(groups, ModuleGroup{Module: def.Module})
		}
		groups[i].Permissions = append(groups[i].Permissions, def)
	}
	return groups, nil
}
