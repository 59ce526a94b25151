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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-sentra/sentra/internal/engine/access"
	"github.com/go-sentra/sentra/internal/engine/model"
	"github.com/go-sentra/sentra/internal/engine/repo"
	"github.com/go-sentra/sentra/pkg/log"
)

// Redis 不可用时快照的最长存活时间
const snapshotMaxAge = 30 * time.Second

var decisionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sentra_access_decisions_total",
	Help: "Authorization decisions by result and reason.",
}, []string{"result", "reason"})

// AccessService 判定入口
// 系统级快照（权限点登记表、部门树、两本字典）按配置代号缓存，
// 用户态（档案、绑定、任职）每次判定现查
type AccessService struct {
	permRepo   repo.IPermissionRepository
	dictRepo   repo.IDictionaryRepository
	deptRepo   repo.IDepartmentRepository
	bundleRepo repo.IBundleRepository
	userRepo   repo.IUserRepository
	assignRepo repo.IAssignmentRepository
	gen        *Generation

	mu       sync.RWMutex
	snapGen  int64
	snapTime time.Time
	eval     *access.Evaluator
}

func NewAccessService(
	permRepo repo.IPermissionRepository,
	dictRepo repo.IDictionaryRepository,
	deptRepo repo.IDepartmentRepository,
	bundleRepo repo.IBundleRepository,
	userRepo repo.IUserRepository,
	assignRepo repo.IAssignmentRepository,
	gen *Generation,
) *AccessService {
	return &AccessService{
		permRepo:   permRepo,
		dictRepo:   dictRepo,
		deptRepo:   deptRepo,
		bundleRepo: bundleRepo,
		userRepo:   userRepo,
		assignRepo: assignRepo,
		gen:        gen,
	}
}

// Resolve 三层判定
// Record 为空表示纯功能性动作，只走 Layer 1
func (as *AccessService) Resolve(ctx context.Context, req *model.ResolveReq) (*access.Decision, error) {
	eval, err := as.evaluator(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := as.subject(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	var rec *access.Record
	if req.Record != nil {
		rec = &access.Record{
			OwnerId:    req.Record.OwnerId,
			DeptId:     req.Record.DeptId,
			Dimensions: req.Record.Dimensions,
		}
	}
	dec := eval.Resolve(*sub, req.PermKey, rec)
	result, reason := "deny", dec.Reason
	if dec.Allowed {
		result, reason = "allow", "ok"
	}
	decisionCounter.WithLabelValues(result, reason).Inc()
	log.Debugw("access resolved",
		"userId", req.UserId, "permKey", req.PermKey,
		"allowed", dec.Allowed, "reason", dec.Reason)
	return &dec, nil
}

// ActivePolicies 用户当前生效的输出限制策略（Layer 3）
func (as *AccessService) ActivePolicies(ctx context.Context, userId string) ([]string, error) {
	eval, err := as.evaluator(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := as.subject(ctx, userId)
	if err != nil {
		return nil, err
	}
	return eval.ActivePolicies(*sub), nil
}

// subject 加载用户态判定快照
func (as *AccessService) subject(ctx context.Context, userId string) (*access.Subject, error) {
	user, err := as.userRepo.GetUser(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}
	bundleIds, err := as.userRepo.GetBundleIds(userId)
	if err != nil {
		return nil, err
	}
	bundles, err := as.bundleRepo.GetBundlesByBundleIds(bundleIds)
	if err != nil {
		return nil, err
	}
	assignments, err := as.assignRepo.GetAssignments(userId)
	if err != nil {
		return nil, err
	}
	sub := &access.Subject{
		UserId:     user.UserId,
		Enabled:    user.IsEnabled == 1,
		SuperAdmin: user.IsSuperAdmin == 1,
	}
	for i := range bundles {
		sub.Bundles = append(sub.Bundles, access.FromBundle(&bundles[i]))
	}
	for _, a := range assignments {
		sub.Assignments = append(sub.Assignments, access.Assignment{
			DeptId:      a.DeptId,
			AccessLevel: a.AccessLevel,
		})
	}
	return sub, nil
}

// evaluator 返回与当前配置代号一致的系统级快照
// 管理端写操作 Bump 代号后，下一次判定在这里拿到重建的快照
func (as *AccessService) evaluator(ctx context.Context) (*access.Evaluator, error) {
	gen, genErr := as.gen.Current(ctx)

	as.mu.RLock()
	if as.eval != nil {
		if genErr == nil && as.snapGen == gen {
			eval := as.eval
			as.mu.RUnlock()
			return eval, nil
		}
		if genErr != nil && time.Since(as.snapTime) < snapshotMaxAge {
			// Redis 故障期间沿用未过期的快照
			eval := as.eval
			as.mu.RUnlock()
			return eval, nil
		}
	}
	as.mu.RUnlock()

	as.mu.Lock()
	defer as.mu.Unlock()
	if as.eval != nil && genErr == nil && as.snapGen == gen {
		return as.eval, nil
	}
	eval, err := as.loadEvaluator()
	if err != nil {
		return nil, err
	}
	as.eval = eval
	as.snapGen = gen
	as.snapTime = time.Now()
	if genErr != nil {
		log.Errorw("generation lookup failed, snapshot rebuilt on TTL", "error", genErr)
	}
	return eval, nil
}

func (as *AccessService) loadEvaluator() (*access.Evaluator, error) {
	defs, err := as.permRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}
	depts, err := as.deptRepo.ListDepartments()
	if err != nil {
		return nil, err
	}
	scopes, err := as.dictRepo.ListScopes()
	if err != nil {
		return nil, err
	}
	policies, err := as.dictRepo.ListPolicies()
	if err != nil {
		return nil, err
	}
	dims := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		dims[s.ScopeKey] = struct{}{}
	}
	pols := make(map[string]struct{}, len(policies))
	for _, p := range policies {
		pols[p.PolicyKey] = struct{}{}
	}
	return &access.Evaluator{
		Catalog:    access.NewCatalog(defs),
		Tree:       access.NewTree(depts),
		Dimensions: dims,
		Policies:   pols,
	}, nil
}
