package schema

// FileTypeTable represents the 'catalog.filetype' table
type FileTypeTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// FileType is the schema definition for catalog.filetype
var FileType = FileTypeTable{
	Table:     "catalog.filetype",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
