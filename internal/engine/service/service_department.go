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

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/go-sentra/sentra/internal/engine/access"
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/pkg/id"
	"github.com/go-sentra/sentra/pkg/log"
)

type DepartmentService struct {
	deptRepo   repo.IDepartmentRepository
	assignRepo repo.IAssignmentRepository
	gen        *Generation
}

func NewDepartmentService(deptRepo repo.IDepartmentRepository, assignRepo repo.IAssignmentRepository, gen *Generation) *DepartmentService {
	return &DepartmentService{
		deptRepo:   deptRepo,
		assignRepo: assignRepo,
		gen:        gen,
	}
}

// CreateDepartment 创建部门；code 唯一且创建后不可变更
func (ds *DepartmentService) CreateDepartment(ctx context.Context, req *model.CreateDepartmentReq) (*model.Department, error) {
	count, err := ds.deptRepo.CountCode(req.Code)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDeptCodeTaken
	}
	if req.ParentId != "" {
		if _, err := ds.deptRepo.GetDepartment(req.ParentId); err != nil {
			return nil, ErrDeptNotFound
		}
	}
	dept := &model.Department{
		DeptId:   id.GetUUID(),
		Name:     req.Name,
		Code:     req.Code,
		ParentId: req.ParentId,
	}
	if err := ds.deptRepo.CreateDepartment(dept); err != nil {
		log.Errorw("failed to create department", "code", req.Code, "error", err)
		return nil, err
	}
	ds.gen.Bump(ctx)
	log.Infow("department created", "deptId", dept.DeptId, "code", dept.Code)
	return dept, nil
}

// UpdateDepartment 重命名
func (ds *DepartmentService) UpdateDepartment(ctx context.Context, deptId string, req *model.UpdateDepartmentReq) error {
	if _, err := ds.deptRepo.GetDepartment(deptId); err != nil {
		return ErrDeptNotFound
	}
	if req.Name == nil {
		return nil
	}
	if err := ds.deptRepo.UpdateDepartment(deptId, map[string]any{"name": *req.Name}); err != nil {
		return err
	}
	ds.gen.Bump(ctx)
	return nil
}

// ReparentDepartment 换父；环检测在仓储事务内完成
func (ds *DepartmentService) ReparentDepartment(ctx context.Context, deptId string, req *model.ReparentDepartmentReq) error {
	err := ds.deptRepo.ReparentDepartment(deptId, req.NewParentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeptNotFound
		}
		return err
	}
	ds.gen.Bump(ctx)
	log.Infow("department reparented", "deptId", deptId, "newParentId", req.NewParentId)
	return nil
}

// DeleteDepartment 删除部门
// 默认拒绝仍有下级的部门，cascade 时连同整棵子树与任职记录一起删
func (ds *DepartmentService) DeleteDepartment(ctx context.Context, deptId string, cascade bool) error {
	err := ds.deptRepo.DeleteDepartment(deptId, cascade)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeptNotFound
		}
		return err
	}
	ds.gen.Bump(ctx)
	log.Infow("department deleted", "deptId", deptId, "cascade", cascade)
	return nil
}

// Descendants 子树的全部下级部门（不含自身）
func (ds *DepartmentService) Descendants(ctx context.Context, deptId string) ([]model.Department, error) {
	if _, err := ds.deptRepo.GetDepartment(deptId); err != nil {
		return nil, ErrDeptNotFound
	}
	depts, err := ds.deptRepo.ListDepartments()
	if err != nil {
		return nil, err
	}
	desc, err := access.NewTree(depts).DescendantsOf(deptId)
	if err != nil {
		return nil, err
	}
	out := make([]model.Department, 0, len(desc))
	for _, d := range depts {
		if _, ok := desc[d.DeptId]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// Users 部门的直接任职记录（不含下级部门）
func (ds *DepartmentService) Users(ctx context.Context, deptId string) ([]model.DepartmentAssignment, error) {
	if _, err := ds.deptRepo.GetDepartment(deptId); err != nil {
		return nil, ErrDeptNotFound
	}
	return ds.assignRepo.GetAssignmentsByDept(deptId)
}

// DeptNode 部门树节点
type DeptNode struct {
	model.Department
	Children []*DeptNode `json:"children"`
}

// Tree 组装整棵部门树；孤儿节点挂到根层而不是丢弃
func (ds *DepartmentService) Tree(ctx context.Context) ([]*DeptNode, error) {
	depts, err := ds.deptRepo.ListDepartments()
	if err != nil {
		return nil, err
	}
	nodes := make(map[string]*DeptNode, len(depts))
	for i := range depts {
		nodes[depts[i].DeptId] = &DeptNode{Department: depts[i], Children: []*DeptNode{}}
	}
	roots := make([]*DeptNode, 0)
	for _, n := range nodes {
		if n.ParentId == "" {
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[n.ParentId]
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	return roots, nil
}
