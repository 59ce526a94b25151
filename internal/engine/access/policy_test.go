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
)

// 最严格者生效：任一权限包开启即生效，关闭方不能抵消
func TestActivePolicies_MostRestrictiveWins(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{
			{BundleId: "b1", Policies: map[string]bool{"mask_phone": true, "forbid_export": false}},
			{BundleId: "b2", Policies: map[string]bool{"mask_phone": false}},
		},
	}

	assert.Equal(t, []string{"mask_phone"}, e.ActivePolicies(sub))
}

func TestActivePolicies_UndefinedKeysDropped(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{
			{BundleId: "b1", Policies: map[string]bool{"mask_phone": true, "ghost_policy": true}},
		},
	}

	assert.Equal(t, []string{"mask_phone"}, e.ActivePolicies(sub))
}

func TestActivePolicies_LockedAndSuperAdmin(t *testing.T) {
	e := testEvaluator()
	bundles := []Bundle{{BundleId: "b1", Policies: map[string]bool{"mask_phone": true}}}

	locked := Subject{UserId: "u1", Enabled: false, Bundles: bundles}
	assert.Empty(t, e.ActivePolicies(locked))

	admin := Subject{UserId: "root", Enabled: true, SuperAdmin: true, Bundles: bundles}
	assert.Empty(t, e.ActivePolicies(admin))
}

func TestActivePolicies_SortedAndStable(t *testing.T) {
	e := testEvaluator()
	sub := Subject{
		UserId:  "u1",
		Enabled: true,
		Bundles: []Bundle{
			{BundleId: "b1", Policies: map[string]bool{"forbid_export": true}},
			{BundleId: "b2", Policies: map[string]bool{"mask_phone": true}},
		},
	}

	assert.Equal(t, []string{"forbid_export", "mask_phone"}, e.ActivePolicies(sub))
}

func TestCatalog_Group(t *testing.T) {
	e := testEvaluator()

	mod, ok := e.Catalog.Group("order.view")
	assert.True(t, ok)
	assert.Equal(t, "order", mod)

	_, ok = e.Catalog.Group("nope")
	assert.False(t, ok)
	assert.Equal(t, 4, e.Catalog.Len())
}
