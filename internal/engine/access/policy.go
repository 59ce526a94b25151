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

import "sort"

// ActivePolicies Layer-3 聚合：多个权限包按"最严格者生效"取并集
// 任一权限包开启的策略即对用户生效；未登记的策略 key 不会出现在结果里
// 锁定用户与超管均返回空集
func (e *Evaluator) ActivePolicies(sub Subject) []string {
	if !sub.Enabled || sub.SuperAdmin {
		return []string{}
	}
	active := make(map[string]struct{})
	for _, b := range sub.Bundles {
		for key, on := range b.Policies {
			if !on {
				continue
			}
			if _, defined := e.Policies[key]; !defined {
				continue
			}
			active[key] = struct{}{}
		}
	}
	out := make([]string, 0, len(active))
	for key := range active {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
