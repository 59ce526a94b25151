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

	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/pkg/log"
)

// DictionaryService 维度与策略两本字典的管理
type DictionaryService struct {
	dictRepo repo.IDictionaryRepository
	gen      *Generation
}

func NewDictionaryService(dictRepo repo.IDictionaryRepository, gen *Generation) *DictionaryService {
	return &DictionaryService{
		dictRepo: dictRepo,
		gen:      gen,
	}
}

// CreateScope 登记数据范围维度
func (ds *DictionaryService) CreateScope(ctx context.Context, req *model.CreateScopeReq) (*model.ScopeDefinition, error) {
	count, err := ds.dictRepo.CountScopeKey(req.ScopeKey)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrScopeKeyTaken
	}
	def := &model.ScopeDefinition{
		ScopeKey: req.ScopeKey,
		Label:    req.Label,
		Module:   req.Module,
	}
	if err := ds.dictRepo.CreateScope(def); err != nil {
		log.Errorw("failed to create scope definition", "scopeKey", req.ScopeKey, "error", err)
		return nil, err
	}
	ds.gen.Bump(ctx)
	return def, nil
}

func (ds *DictionaryService) ListScopes(ctx context.Context) ([]model.ScopeDefinition, error) {
	return ds.dictRepo.ListScopes()
}

// CreatePolicy 登记输出限制策略
func (ds *DictionaryService) CreatePolicy(ctx context.Context, req *model.CreatePolicyReq) (*model.PolicyDefinition, error) {
	count, err := ds.dictRepo.CountPolicyKey(req.PolicyKey)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPolicyKeyTaken
	}
	def := &model.PolicyDefinition{
		PolicyKey:   req.PolicyKey,
		Label:       req.Label,
		Description: req.Description,
	}
	if err := ds.dictRepo.CreatePolicy(def); err != nil {
		log.Errorw("failed to create policy definition", "policyKey", req.PolicyKey, "error", err)
		return nil, err
	}
	ds.gen.Bump(ctx)
	return def, nil
}

func (ds *DictionaryService) ListPolicies(ctx context.Context) ([]model.PolicyDefinition, error) {
	return ds.dictRepo.ListPolicies()
}
