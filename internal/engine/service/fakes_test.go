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
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/go-sentra/sentra/internal/engine/model"
)

// 内存假缓存：只维护一个自增计数器
type fakeCache struct {
	counters map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: map[string]int64{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if n, ok := f.counters[key]; ok {
		cmd := redis.NewStringCmd(ctx)
		cmd.SetVal(strconv.FormatInt(n, 10))
		return cmd
	}
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.counters, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func (f *fakeCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

type fakePermRepo struct {
	defs map[string]*model.PermissionDefinition
}

func newFakePermRepo() *fakePermRepo {
	return &fakePermRepo{defs: map[string]*model.PermissionDefinition{}}
}

func (f *fakePermRepo) CreateDefinition(def *model.PermissionDefinition) error {
	f.defs[def.PermKey] = def
	return nil
}

func (f *fakePermRepo) GetDefinition(permKey string) (*model.PermissionDefinition, error) {
	def, ok := f.defs[permKey]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return def, nil
}

func (f *fakePermRepo) ListDefinitions() ([]model.PermissionDefinition, error) {
	out := make([]model.PermissionDefinition, 0, len(f.defs))
	for _, def := range f.defs {
		out = append(out, *def)
	}
	return out, nil
}

func (f *fakePermRepo) ListDefinitionsByModule(module string) ([]model.PermissionDefinition, error) {
	out := make([]model.PermissionDefinition, 0)
	for _, def := range f.defs {
		if def.Module == module {
			out = append(out, *def)
		}
	}
	return out, nil
}

func (f *fakePermRepo) UpdateDefinition(permKey string, updates map[string]any) error {
	def, ok := f.defs[permKey]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["module"]; ok {
		def.Module = v.(string)
	}
	if v, ok := updates["label"]; ok {
		def.Label = v.(string)
	}
	if v, ok := updates["status"]; ok {
		def.Status = v.(string)
	}
	return nil
}

func (f *fakePermRepo) CountKey(permKey string) (int64, error) {
	if _, ok := f.defs[permKey]; ok {
		return 1, nil
	}
	return 0, nil
}

type fakeDictRepo struct {
	scopes   map[string]*model.ScopeDefinition
	policies map[string]*model.PolicyDefinition
}

func newFakeDictRepo() *fakeDictRepo {
	return &fakeDictRepo{
		scopes:   map[string]*model.ScopeDefinition{},
		policies: map[string]*model.PolicyDefinition{},
	}
}

func (f *fakeDictRepo) CreateScope(def *model.ScopeDefinition) error {
	f.scopes[def.ScopeKey] = def
	return nil
}

func (f *fakeDictRepo) ListScopes() ([]model.ScopeDefinition, error) {
	out := make([]model.ScopeDefinition, 0, len(f.scopes))
	for _, def := range f.scopes {
		out = append(out, *def)
	}
	return out, nil
}

func (f *fakeDictRepo) CountScopeKey(scopeKey string) (int64, error) {
	if _, ok := f.scopes[scopeKey]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeDictRepo) CreatePolicy(def *model.PolicyDefinition) error {
	f.policies[def.PolicyKey] = def
	return nil
}

func (f *fakeDictRepo) ListPolicies() ([]model.PolicyDefinition, error) {
	out := make([]model.PolicyDefinition, 0, len(f.policies))
	for _, def := range f.policies {
		out = append(out, *def)
	}
	return out, nil
}

func (f *fakeDictRepo) CountPolicyKey(policyKey string) (int64, error) {
	if _, ok := f.policies[policyKey]; ok {
		return 1, nil
	}
	return 0, nil
}

type fakeDeptRepo struct {
	depts map[string]*model.Department
}

func newFakeDeptRepo() *fakeDeptRepo {
	return &fakeDeptRepo{depts: map[string]*model.Department{}}
}

func (f *fakeDeptRepo) CreateDepartment(dept *model.Department) error {
	f.depts[dept.DeptId] = dept
	return nil
}

func (f *fakeDeptRepo) GetDepartment(deptId string) (*model.Department, error) {
	dept, ok := f.depts[deptId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dept, nil
}

func (f *fakeDeptRepo) ListDepartments() ([]model.Department, error) {
	out := make([]model.Department, 0, len(f.depts))
	for _, dept := range f.depts {
		out = append(out, *dept)
	}
	return out, nil
}

func (f *fakeDeptRepo) UpdateDepartment(deptId string, updates map[string]any) error {
	dept, ok := f.depts[deptId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		dept.Name = v.(string)
	}
	return nil
}

func (f *fakeDeptRepo) ReparentDepartment(deptId, newParentId string) error {
	dept, ok := f.depts[deptId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	dept.ParentId = newParentId
	return nil
}

func (f *fakeDeptRepo) DeleteDepartment(deptId string, cascade bool) error {
	if _, ok := f.depts[deptId]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.depts, deptId)
	return nil
}

func (f *fakeDeptRepo) CountCode(code string) (int64, error) {
	for _, dept := range f.depts {
		if dept.Code == code {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDeptRepo) CountChildren(deptId string) (int64, error) {
	var n int64
	for _, dept := range f.depts {
		if dept.ParentId == deptId {
			n++
		}
	}
	return n, nil
}

type fakeBundleRepo struct {
	bundles  map[string]*model.RoleBundle
	bindings map[string][]string // userId -> bundleIds, shared with fakeUserRepo
}

func newFakeBundleRepo() *fakeBundleRepo {
	return &fakeBundleRepo{
		bundles:  map[string]*model.RoleBundle{},
		bindings: map[string][]string{},
	}
}

func (f *fakeBundleRepo) CreateBundle(bundle *model.RoleBundle) error {
	f.bundles[bundle.BundleId] = bundle
	return nil
}

func (f *fakeBundleRepo) GetBundle(bundleId string) (*model.RoleBundle, error) {
	bundle, ok := f.bundles[bundleId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return bundle, nil
}

func (f *fakeBundleRepo) GetBundlesByBundleIds(bundleIds []string) ([]model.RoleBundle, error) {
	out := make([]model.RoleBundle, 0, len(bundleIds))
	for _, id := range bundleIds {
		if bundle, ok := f.bundles[id]; ok {
			out = append(out, *bundle)
		}
	}
	return out, nil
}

func (f *fakeBundleRepo) ListBundles(pageNum, pageSize int) ([]model.RoleBundle, int64, error) {
	out := make([]model.RoleBundle, 0, len(f.bundles))
	for _, bundle := range f.bundles {
		out = append(out, *bundle)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBundleRepo) UpdateBundle(bundleId string, updates map[string]any) error {
	bundle, ok := f.bundles[bundleId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		bundle.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		bundle.Description = v.(string)
	}
	if v, ok := updates["permission_keys"]; ok {
		bundle.PermissionKeys = v.([]byte)
	}
	if v, ok := updates["data_scope"]; ok {
		bundle.DataScope = v.([]byte)
	}
	if v, ok := updates["access_policies"]; ok {
		bundle.AccessPolicies = v.([]byte)
	}
	return nil
}

func (f *fakeBundleRepo) DeleteBundle(bundleId string) error {
	if _, ok := f.bundles[bundleId]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.bundles, bundleId)
	for userId, ids := range f.bindings {
		kept := ids[:0]
		for _, id := range ids {
			if id != bundleId {
				kept = append(kept, id)
			}
		}
		f.bindings[userId] = kept
	}
	return nil
}

func (f *fakeBundleRepo) CountName(name string) (int64, error) {
	for _, bundle := range f.bundles {
		if bundle.Name == name {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBundleRepo) CountBindings(bundleId string) (int64, error) {
	var n int64
	for _, ids := range f.bindings {
		for _, id := range ids {
			if id == bundleId {
				n++
			}
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users    map[string]*model.UserProfile
	bindings map[string][]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*model.UserProfile{},
		bindings: map[string][]string{},
	}
}

func (f *fakeUserRepo) CreateUser(user *model.UserProfile) error {
	f.users[user.UserId] = user
	return nil
}

func (f *fakeUserRepo) GetUser(userId string) (*model.UserProfile, error) {
	user, ok := f.users[userId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(pageNum, pageSize int) ([]model.UserProfile, int64, error) {
	out := make([]model.UserProfile, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) UpdateUser(userId string, updates map[string]any) error {
	user, ok := f.users[userId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["is_enabled"]; ok {
		user.IsEnabled = v.(int)
	}
	if v, ok := updates["is_superadmin"]; ok {
		user.IsSuperAdmin = v.(int)
	}
	return nil
}

func (f *fakeUserRepo) DeleteUser(userId string) error {
	if _, ok := f.users[userId]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, userId)
	delete(f.bindings, userId)
	return nil
}

func (f *fakeUserRepo) GetBundleIds(userId string) ([]string, error) {
	return f.bindings[userId], nil
}

func (f *fakeUserRepo) SyncBundles(userId string, bundleIds []string) error {
	f.bindings[userId] = append([]string(nil), bundleIds...)
	return nil
}

type fakeAssignRepo struct {
	byUser map[string][]model.DepartmentAssignment
}

func newFakeAssignRepo() *fakeAssignRepo {
	return &fakeAssignRepo{byUser: map[string][]model.DepartmentAssignment{}}
}

func (f *fakeAssignRepo) GetAssignments(userId string) ([]model.DepartmentAssignment, error) {
	return f.byUser[userId], nil
}

func (f *fakeAssignRepo) GetAssignmentsByDept(deptId string) ([]model.DepartmentAssignment, error) {
	out := make([]model.DepartmentAssignment, 0)
	for _, items := range f.byUser {
		for _, item := range items {
			if item.DeptId == deptId {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (f *fakeAssignRepo) SyncAssignments(userId string, items []model.AssignmentItem) error {
	rows := make([]model.DepartmentAssignment, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.DepartmentAssignment{
			UserId:      userId,
			DeptId:      item.DeptId,
			AccessLevel: item.AccessLevel,
			Position:    item.Position,
		})
	}
	f.byUser[userId] = rows
	return nil
}
