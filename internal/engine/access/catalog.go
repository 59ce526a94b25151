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

type catalogEntry struct {
	module string
	label  string
	status string
}

// Catalog 权限点登记表的只读快照
type Catalog struct {
	defs map[string]catalogEntry
}

// NewCatalog builds a lookup snapshot from the current definitions.
func NewCatalog(defs []model.PermissionDefinition) *Catalog {
	m := make(map[string]catalogEntry, len(defs))
	for _, d := range defs {
		m[d.PermKey] = catalogEntry{module: d.Module, label: d.Label, status: d.Status}
	}
	return &Catalog{defs: m}
}

// IsEnforceable 仅当权限点存在且处于 active 状态时返回 true
// 未登记的 key 一律返回 false（未知权限绝不放行）
func (c *Catalog) IsEnforceable(key string) bool {
	def, ok := c.defs[key]
	return ok && def.status == model.PermStatusActive
}

// Group returns the module a key belongs to, for matrix display.
func (c *Catalog) Group(key string) (string, bool) {
	def, ok := c.defs[key]
	if !ok {
		return "", false
	}
	return def.module, true
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
