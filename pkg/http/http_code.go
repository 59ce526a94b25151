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

package http

var (
	Failed                        = failed(500, "Request failed")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")

	// BadRequest 400
	BadRequest = failed(4000, "Bad request")
	NotFound   = failed(4004, "Not found")

	// Forbidden 403
	Forbidden        = failed(4030, "Forbidden")
	PermissionDenied = failed(4031, "Permission denied")

	InternalError = failed(5000, "Internal error, please contact the administrator")

	UserNotExist     = failed(4041, "User does not exist")
	UserAlreadyExist = failed(4042, "User already exists")

	BundleNotExist     = failed(4051, "Role bundle does not exist")
	BundleNameTaken    = failed(4052, "Role bundle name already exists")
	DepartmentNotExist = failed(4061, "Department does not exist")
	DepartmentCodeTaken = failed(4062, "Department code already exists")
	DepartmentHasChildren = failed(4063, "Department still has children")
	DepartmentCycle    = failed(4064, "Reparenting would create a cycle")
	PermissionNotExist = failed(4071, "Permission definition does not exist")
	PermissionKeyTaken = failed(4072, "Permission key already exists")
	DefinitionNotExist = failed(4073, "Definition does not exist")
	DefinitionKeyTaken = failed(4074, "Definition key already exists")
)

var (
	Success = success(200, "Request Success")
)

// failed 构造函数
func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

// success 构造函数
func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
