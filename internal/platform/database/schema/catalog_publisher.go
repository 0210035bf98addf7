package schema

// PublisherTable represents the 'catalog.publisher' table
type PublisherTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Publisher is the schema definition for catalog.publisher
var Publisher = PublisherTable{
	Table:     "catalog.publisher",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
