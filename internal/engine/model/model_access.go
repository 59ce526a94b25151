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

package model

// RecordRef 被鉴权的业务记录
// OwnerId 为记录创建者，DeptId 为记录归属部门，Dimensions 为 Layer-2 维度值
type RecordRef struct {
	OwnerId    string            `json:"ownerId"`
	DeptId     string            `json:"deptId"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

// ResolveReq 权限判定请求
// Record 为空表示纯功能性动作（如"能否导出"），只走 Layer 1
type ResolveReq struct {
	UserId  string     `json:"userId" validate:"required"`
	PermKey string     `json:"permKey" validate:"required"`
	Record  *RecordRef `json:"record,omitempty"`
}
