package schema

// LanguageTable represents the 'catalog.language' table
type LanguageTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Language is the schema definition for catalog.language
var Language = LanguageTable{
	Table:     "catalog.language",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
