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

package repo

import (
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/pkg/database"
)

// IDictionaryRepository 维度字典与策略字典
// 两张字典表只登记合法 key，权限包里未登记的 key 由判定层忽略
type IDictionaryRepository interface {
	CreateScope(def *model.ScopeDefinition) error
	ListScopes() ([]model.ScopeDefinition, error)
	CountScopeKey(scopeKey string) (int64, error)
	CreatePolicy(def *model.PolicyDefinition) error
	ListPolicies() ([]model.PolicyDefinition, error)
	CountPolicyKey(policyKey string) (int64, error)
}

type DictionaryRepo struct {
	database.IDatabase
}

func NewDictionaryRepo(db database.IDatabase) IDictionaryRepository {
	return &DictionaryRepo{
		IDatabase: db,
	}
}

func (r *DictionaryRepo) CreateScope(def *model.ScopeDefinition) error {
	return r.Database().Table(def.TableName()).Create(def).Error
}

func (r *DictionaryRepo) ListScopes() ([]model.ScopeDefinition, error) {
	var defs []model.ScopeDefinition
	err := r.Database().Order("scope_key").Find(&defs).Error
	return defs, err
}

func (r *DictionaryRepo) CountScopeKey(scopeKey string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.ScopeDefinition{}).
		Where("scope_key = ?", scopeKey).Count(&count).Error
	return count, err
}

func (r *DictionaryRepo) CreatePolicy(def *model.PolicyDefinition) error {
	return r.Database().Table(def.TableName()).Create(def).Error
}

func (r *DictionaryRepo) ListPolicies() ([]model.PolicyDefinition, error) {
	var defs []model.PolicyDefinition
	err := r.Database().Order("policy_key").Find(&defs).Error
	return defs, err
}

func (r *DictionaryRepo) CountPolicyKey(policyKey string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.PolicyDefinition{}).
		Where("policy_key = ?", policyKey).Count(&count).Error
	return count, err
}
