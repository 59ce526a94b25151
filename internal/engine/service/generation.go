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

	"github.com/redis/go-redis/v9"

	"github.com/go-sentra/sentra/pkg/cache"
	"github.com/go-sentra/sentra/pkg/log"
)

// 配置代计数器的 Redis key，任何管理面写操作自增一次
const generationKey = "access:gen"

// Generation 配置代号，用于判定快照的同步失效
// 管理端每次写操作 Bump 一次，判定端发现代号变化即重建快照，
// 保证修改保存后的下一次检查就使用新配置
type Generation struct {
	cache cache.ICache
}

func NewGeneration(c cache.ICache) *Generation {
	return &Generation{cache: c}
}

// Bump 使所有判定快照失效
// Redis 故障只记日志不阻塞管理写入，判定端会按 TTL 自行兜底
func (g *Generation) Bump(ctx context.Context) {
	if err := g.cache.Incr(ctx, generationKey).Err(); err != nil {
		log.Errorw("failed to bump access generation", "error", err)
	}
}

// Current 读取当前代号；key 不存在视为 0
func (g *Generation) Current(ctx context.Context) (int64, error) {
	n, err := g.cache.Get(ctx, generationKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
