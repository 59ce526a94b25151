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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/go-sentra/sentra/internal/engine/model"
)

func TestTree_DescendantsOf(t *testing.T) {
	tree := NewTree([]model.Department{
		{DeptId: "a", ParentId: ""},
		{DeptId: "b", ParentId: "a"},
		{DeptId: "c", ParentId: "a"},
		{DeptId: "d", ParentId: "b"},
		{DeptId: "e", ParentId: "d"},
	})

	desc, err := tree.DescendantsOf("a")
	assert.NoError(t, err)
	assert.Len(t, desc, 4)

	desc, err = tree.DescendantsOf("b")
	assert.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"d": {}, "e": {}}, desc)

	// 叶子与自身都不在结果里
	desc, err = tree.DescendantsOf("e")
	assert.NoError(t, err)
	assert.Empty(t, desc)
}

func TestTree_CycleDetection(t *testing.T) {
	// 损坏的数据：a -> b -> c -> a
	tree := NewTree([]model.Department{
		{DeptId: "a", ParentId: "c"},
		{DeptId: "b", ParentId: "a"},
		{DeptId: "c", ParentId: "b"},
	})

	_, err := tree.DescendantsOf("a")
	assert.True(t, errors.Is(err, ErrCycle))
}

func TestTree_WouldCreateCycle(t *testing.T) {
	tree := NewTree([]model.Department{
		{DeptId: "a", ParentId: ""},
		{DeptId: "b", ParentId: "a"},
		{DeptId: "c", ParentId: "b"},
	})

	tests := []struct {
		name      string
		deptId    string
		newParent string
		cycle     bool
	}{
		{"move to root", "b", "", false},
		{"self parent", "a", "a", true},
		{"under own child", "a", "b", true},
		{"under own grandchild", "a", "c", true},
		{"sideways move", "c", "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tree.WouldCreateCycle(tt.deptId, tt.newParent)
			assert.NoError(t, err)
			assert.Equal(t, tt.cycle, got)
		})
	}
}

func TestTree_Exists(t *testing.T) {
	tree := NewTree([]model.Department{{DeptId: "a", ParentId: ""}})
	assert.True(t, tree.Exists("a"))
	assert.False(t, tree.Exists("zz"))
}
