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

import "github.com/google/wire"

// ProviderSet 提供服务层相关的依赖
var ProviderSet = wire.NewSet(
	NewGeneration,
	NewPermissionService,
	NewDictionaryService,
	NewDepartmentService,
	NewBundleService,
	NewUserService,
	NewAccessService,
	NewServices,
)

// Services 服务层聚合，路由层只依赖这一个入口
type Services struct {
	Permission *PermissionService
	Dictionary *DictionaryService
	Department *DepartmentService
	Bundle     *BundleService
	User       *UserService
	Access     *AccessService
}

func NewServices(
	permission *PermissionService,
	dictionary *DictionaryService,
	department *DepartmentService,
	bundle *BundleService,
	user *UserService,
	accessSvc *AccessService,
) *Services {
	return &Services{
		Permission: permission,
		Dictionary: dictionary,
		Department: department,
		Bundle:     bundle,
		User:       user,
		Access:     accessSvc,
	}
}
