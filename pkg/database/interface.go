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

package database

import "gorm.io/gorm"

// IDatabase defines the database access interface shared by all repositories
type IDatabase interface {
	// Database returns the underlying *gorm.DB (MySQL)
	Database() *gorm.DB
}

type gormDatabase struct {
	db *gorm.DB
}

// NewDatabase wraps a gorm connection in the IDatabase interface
func NewDatabase(db *gorm.DB) IDatabase {
	return &gormDatabase{db: db}
}

// Database returns the MySQL database connection
func (g *gormDatabase) Database() *gorm.DB {
	return g.db
}
