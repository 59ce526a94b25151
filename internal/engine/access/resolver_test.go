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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-sentra/sentra/internal/engine/model"
)

func testEvaluator() *Evaluator {
	return &Evaluator{
		Catalog: NewCatalog([]model.PermissionDefinition{
			{PermKey: "order.view", Module: "order", Status: model.PermStatusActive},
			{PermKey: "order.export", Module: "order", Status: model.PermStatusActive},
			{PermKey: "order.refund", Module: "order", Status: model.PermStatusMaintenance},
			{PermKey: "customer.view", Module: "customer", Status: model.PermStatusActive},
		}),
		Tree: NewTree([]model.Department{
			{DeptId: "d-hq", ParentId: ""},
			{DeptId: "d-sales", ParentId: "d-hq"},
			{DeptId: "d-sales-north", ParentId: "d-sales"},
			{DeptId: "d-sales-south", ParentId: "d-sales"},
			{DeptId: "d-finance", ParentId: "d-hq"},
		}),
		Dimensions: map[string]struct{}{"region": {}, "channel": {}},
		Policies:   map[string]struct{}{"mask_phone": {}, "forbid_export": {}},
	}
}

func ownOnlyBundle(keys ...string) Bundle {
	return Bundle{BundleId: "b-own", PermissionKeys: keys, Scope: model.DataScope{ViewType: model.ViewTypeOwnOnly}}
}

func TestResolve_LockedUser(t *testing.T) {
	e := testEvaluator()
	sub := Subject{UserId: "u1", Enabled: false, Bundles: []Bundle{ownOnlyBundle("order.view")}}

	d := e.Resolve(sub, "order.view", nil)
	assert.False(t, d.Allowed)
	assert.False(t, d.Visible)
	assert.Equal(t, ReasonLockedUser, d.Reason)
	assert.Empty(t, d.ActivePolicies)
}

func TestResolve_SuperAdminBypass(t *testing.T) {
	e := testEvaluator()
	// 超管无任何权限包、无任职，仍然全部放行且不受策略约束
	sub := Subject{UserId: "root", Enabled: true, SuperAdmin: true}

	d := e.Resolve(sub, "order.refund", &Record{OwnerId: "someone", DeptId: "d-finance"})
	assert.True(t, d.Allowed)
	assert.True(t, d.Visible)
	assert.Empty(t, d.ActivePolicies)
}

func TestResolve_Layer1(t *testing.T) {
	e := testEvaluator()
	sub := Subject{UserId: "u1", Enabled: true, Bundles: []Bundle{ownOnlyBundle("order.view")}}

	tests := []struct {
		name    string
		permKey string
		allowed bool
		reason  string
	}{
		{"granted active key", "order.view", true, ""},
		{"not granted", "customer.view", false, ReasonPermissionNotGranted},
		{"maintenance key fails closed even when granted", "order.refund", false, ReasonPermissionDisabled},
		{"unknown key is inert", "order.delete", false, ReasonPermissionDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := sub
			if tt.permKey == "order.refund" {
				sub.Bundles = []Bundle{ownOnlyBundle("order.view", "order.refund")}
			}
			d := e.Resolve(sub, tt.permKey, nil)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

// own_only 权限包、无任职：只能看见自己创建的记录
func TestResolve_OwnOnlyNoAssignments(t *testing.T) {
	e := testEvaluator()
	sub := Subject{UserId: "u1", Enabled: true, Bundles: []Bundle{ownOnlyBundle("order.view")}}

	own := e.Resolve(sub, "order.view", &Record{OwnerId: "u1", DeptId: "d-sales"})
	assert.True(t, own.Allowed)
	assert.True(t, own.Visible)

	other := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales"})
	assert.False(t, other.Allowed)
	assert.False(t, other.Visible)
	assert.Equal(t, ReasonOutOfScope, other.Reason)
}

// all 权限包：不论归属与任职，记录全部可见
func TestResolve_AllViewType(t *testing.T) {
	e := testEvaluator()
	sub := Subject{UserId: "u1", Enabled: true, Bundles: []Bundle{{
		BundleId:       "b-all",
		PermissionKeys: []string{"order.view"},
		Scope:          model.DataScope{ViewType: model.ViewTypeAll},
	}}}

	d := e.Resolve(sub, "order.view", &Record{OwnerId: "u9", DeptId: "d-finance"})
	assert.True(t, d.Allowed)
	assert.True(t, d.Visible)
}

// own_only 权限包 + recursive 任职：任职把组织可达范围扩大到整棵子树
func TestResolve_RecursiveAssignmentWidensReach(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:      "u1",
		Enabled:     true,
		Bundles:     []Bundle{ownOnlyBundle("order.view")},
		Assignments: []Assignment{{DeptId: "d-sales", AccessLevel: model.AccessLevelRecursive}},
	}

	inSubtree := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales-north"})
	assert.True(t, inSubtree.Visible)

	outside := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-finance"})
	assert.False(t, outside.Visible)
	assert.Equal(t, ReasonOutOfScope, outside.Reason)

	// 本人数据不受部门限制
	ownElsewhere := e.Resolve(sub, "order.view", &Record{OwnerId: "u1", DeptId: "d-finance"})
	assert.False(t, ownElsewhere.Visible, "own-record fallback only applies without assignments unless an own_only assignment exists")

	sub.Assignments = append(sub.Assignments, Assignment{DeptId: "d-finance", AccessLevel: model.AccessLevelOwnOnly})
	ownAgain := e.Resolve(sub, "order.view", &Record{OwnerId: "u1", DeptId: "d-finance"})
	assert.True(t, ownAgain.Visible)
}

// department 任职只覆盖本部门，不含下级
func TestResolve_DepartmentAssignmentIsNotRecursive(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:      "u1",
		Enabled:     true,
		Bundles:     []Bundle{ownOnlyBundle("order.view")},
		Assignments: []Assignment{{DeptId: "d-sales", AccessLevel: model.AccessLevelDepartment}},
	}

	same := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales"})
	assert.True(t, same.Visible)

	child := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales-north"})
	assert.False(t, child.Visible)
}

// custom 权限包的维度过滤
func TestResolve_CustomDimensionFilters(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{{
			BundleId:       "b-custom",
			PermissionKeys: []string{"order.view"},
			Scope: model.DataScope{
				ViewType:      model.ViewTypeCustom,
				CustomFilters: map[string][]string{"region": {"north", "east"}, "channel": {}},
			},
		}},
		Assignments: []Assignment{{DeptId: "d-sales", AccessLevel: model.AccessLevelRecursive}},
	}

	match := e.Resolve(sub, "order.view", &Record{
		OwnerId: "u2", DeptId: "d-sales-north",
		Dimensions: map[string]string{"region": "north", "channel": "web"},
	})
	assert.True(t, match.Visible)

	wrongValue := e.Resolve(sub, "order.view", &Record{
		OwnerId: "u2", DeptId: "d-sales-north",
		Dimensions: map[string]string{"region": "south"},
	})
	assert.False(t, wrongValue.Visible)

	// 记录缺失受限维度值时不通过
	missing := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales-north"})
	assert.False(t, missing.Visible)
}

func TestResolve_UndefinedDimensionIsIgnored(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{{
			BundleId:       "b-custom",
			PermissionKeys: []string{"order.view"},
			Scope: model.DataScope{
				ViewType:      model.ViewTypeCustom,
				CustomFilters: map[string][]string{"ghost": {"x"}},
			},
		}},
		Assignments: []Assignment{{DeptId: "d-sales", AccessLevel: model.AccessLevelDepartment}},
	}

	d := e.Resolve(sub, "order.view", &Record{OwnerId: "u2", DeptId: "d-sales"})
	assert.True(t, d.Visible, "filters on unregistered dimensions must stay inert")
}

// 多权限包取并集：加包只会放宽，绝不收紧
func TestResolve_BundleUnionIsMonotonic(t *testing.T) {
	e := testEvaluator()
	narrow := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{{
			BundleId:       "b-custom",
			PermissionKeys: []string{"order.view"},
			Scope: model.DataScope{
				ViewType:      model.ViewTypeCustom,
				CustomFilters: map[string][]string{"region": {"north"}},
			},
		}},
		Assignments: []Assignment{{DeptId: "d-sales", AccessLevel: model.AccessLevelRecursive}},
	}
	records := []*Record{
		{OwnerId: "u1", DeptId: "d-sales"},
		{OwnerId: "u2", DeptId: "d-sales-north", Dimensions: map[string]string{"region": "north"}},
		{OwnerId: "u2", DeptId: "d-sales-south", Dimensions: map[string]string{"region": "south"}},
		{OwnerId: "u2", DeptId: "d-finance"},
	}

	wide := narrow
	wide.Bundles = append([]Bundle{ownOnlyBundle("order.view", "order.export")}, narrow.Bundles...)

	for _, rec := range records {
		before := e.Resolve(narrow, "order.view", rec)
		after := e.Resolve(wide, "order.view", rec)
		if before.Visible {
			assert.True(t, after.Visible, "adding a bundle must never hide a previously visible record")
		}
	}
	// 新包带来的权限点同样生效
	d := e.Resolve(wide, "order.export", nil)
	assert.True(t, d.Allowed)
}

func TestResolve_NoBundles(t *testing.T) {
	e := testEvaluator()
	sub := Subject{UserId: "u1", Enabled: true}

	d := e.Resolve(sub, "order.view", &Record{OwnerId: "u1"})
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonPermissionNotGranted, d.Reason)
}
