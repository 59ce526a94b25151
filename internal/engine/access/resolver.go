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

package access

import "github.com/go-sentra/sentra/internal/engine/model"

// Evaluator 单次判定所需的全部系统快照
// Dimensions 为维度字典中已登记的 key；Policies 为策略字典中已登记的 key，
// 未登记的 key 在判定中一律视为不存在
type Evaluator struct {
	Catalog    *Catalog
	Tree       *Tree
	Dimensions map[string]struct{}
	Policies   map[string]struct{}
}

// Resolve 三层判定主入口
// 顺序：用户锁定 -> 超管旁路 -> Layer 1 -> Layer 2（Record 非空时）
// 任何一层失败立即给出原因码，后续层不再参与
func (e *Evaluator) Resolve(sub Subject, permKey string, rec *Record) Decision {
	if !sub.Enabled {
		return Decision{Reason: ReasonLockedUser, ActivePolicies: []string{}}
	}
	if sub.SuperAdmin {
		// 超管绕过全部三层，也不携带任何限制策略
		return Decision{Allowed: true, Visible: true, ActivePolicies: []string{}}
	}
	if !e.Catalog.IsEnforceable(permKey) {
		return Decision{Reason: ReasonPermissionDisabled, ActivePolicies: []string{}}
	}
	if !granted(sub.Bundles, permKey) {
		return Decision{Reason: ReasonPermissionNotGranted, ActivePolicies: []string{}}
	}
	policies := e.ActivePolicies(sub)
	if rec == nil {
		// 纯功能性动作，不涉及具体记录
		return Decision{Allowed: true, Visible: true, ActivePolicies: policies}
	}
	if !e.visibleTo(sub, rec) {
		return Decision{Reason: ReasonOutOfScope, ActivePolicies: policies}
	}
	return Decision{Allowed: true, Visible: true, ActivePolicies: policies}
}

func granted(bundles []Bundle, permKey string) bool {
	for _, b := range bundles {
		for _, k := range b.PermissionKeys {
			if k == permKey {
				return true
			}
		}
	}
	return false
}

// visibleTo Layer-2 组合判定
// 规则：任一 all 权限包直接可见；否则须同时满足
// 组织可达（任职范围并集，无任职时退化为本人数据）且任一权限包通过维度过滤
func (e *Evaluator) visibleTo(sub Subject, rec *Record) bool {
	for _, b := range sub.Bundles {
		if b.Scope.ViewType == model.ViewTypeAll {
			return true
		}
	}
	if !e.orgReach(sub, rec) {
		return false
	}
	for _, b := range sub.Bundles {
		switch b.Scope.ViewType {
		case model.ViewTypeCustom:
			if e.dimensionsPass(b.Scope.CustomFilters, rec.Dimensions) {
				return true
			}
		default:
			// own_only（含缺省）不附加维度过滤
			return true
		}
	}
	return false
}

// orgReach 组织可达性：任职集合上取并集，任一条命中即可达
// 没有任何任职时只剩本人数据这一条退路
func (e *Evaluator) orgReach(sub Subject, rec *Record) bool {
	if len(sub.Assignments) == 0 {
		return rec.OwnerId != "" && rec.OwnerId == sub.UserId
	}
	for _, a := range sub.Assignments {
		switch a.AccessLevel {
		case model.AccessLevelDepartment:
			if rec.DeptId != "" && rec.DeptId == a.DeptId {
				return true
			}
		case model.AccessLevelRecursive:
			if rec.DeptId == "" {
				continue
			}
			if rec.DeptId == a.DeptId {
				return true
			}
			desc, err := e.Tree.DescendantsOf(a.DeptId)
			if err != nil {
				// 树已损坏时向拒绝方向收敛
				continue
			}
			if _, ok := desc[rec.DeptId]; ok {
				return true
			}
		default:
			if rec.OwnerId != "" && rec.OwnerId == sub.UserId {
				return true
			}
		}
	}
	return false
}

// dimensionsPass 维度过滤：非空允许清单取交集语义
// 空清单不限制该维度；未登记的维度 key 直接忽略；记录缺失受限维度值则不通过
func (e *Evaluator) dimensionsPass(filters map[string][]string, dims map[string]string) bool {
	for dim, allowed := range filters {
		if len(allowed) == 0 {
			continue
		}
		if _, defined := e.Dimensions[dim]; !defined {
			continue
		}
		v, ok := dims[dim]
		if !ok {
			return false
		}
		hit := false
		for _, a := range allowed {
			if a == v {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
