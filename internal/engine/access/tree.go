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
	"github.com/pkg/errors"

	"github.com/go-sentra/sentra/internal/engine/model"
)

// ErrCycle 部门图出现环，说明存储层数据已损坏
var ErrCycle = errors.New("department graph contains a cycle")

// Tree 部门层级的只读快照，按 parent 指针构建 children 索引
type Tree struct {
	parent   map[string]string
	children map[string][]string
}

// NewTree builds a hierarchy snapshot from the stored departments.
// Parent pointers are taken as-is; a malformed graph is detected at
// traversal time, not here.
func NewTree(depts []model.Department) *Tree {
	t := &Tree{
		parent:   make(map[string]string, len(depts)),
		children: make(map[string][]string),
	}
	for _, d := range depts {
		t.parent[d.DeptId] = d.ParentId
		if d.ParentId != "" {
			t.children[d.ParentId] = append(t.children[d.ParentId], d.DeptId)
		}
	}
	return t
}

// Exists reports whether the department is part of the snapshot.
func (t *Tree) Exists(deptId string) bool {
	_, ok := t.parent[deptId]
	return ok
}

// DescendantsOf 迭代 BFS 收集全部下级部门（不含自身）
// 每个节点只有一个 parent 指针，重复访问只可能来自环
func (t *Tree) DescendantsOf(deptId string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	queue := append([]string(nil), t.children[deptId]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == deptId {
			return nil, errors.WithStack(ErrCycle)
		}
		if _, seen := out[cur]; seen {
			return nil, errors.WithStack(ErrCycle)
		}
		out[cur] = struct{}{}
		queue = append(queue, t.children[cur]...)
	}
	return out, nil
}

// WouldCreateCycle reports whether reparenting deptId under newParentId
// would make the department its own ancestor. An empty newParentId moves
// the department to the root and can never form a cycle. Errors fail
// toward rejection.
func (t *Tree) WouldCreateCycle(deptId, newParentId string) (bool, error) {
	if newParentId == "" {
		return false, nil
	}
	if deptId == newParentId {
		return true, nil
	}
	desc, err := t.DescendantsOf(deptId)
	if err != nil {
		return true, err
	}
	_, ok := desc[newParentId]
	return ok, nil
}
