// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

// Package schema declares table and column names for every relation the
// repositories touch, so queries are assembled from one source of truth.
package schema

// AuthorTable represents the 'catalog.author' table
type AuthorTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Author is the schema definition for catalog.author
var Author = AuthorTable{
	Table:     "catalog.author",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
