package persistent

// ListOptions carry pagination and sort parsed from query parameters.
// Offset is already translated from 1-based pages.
type ListOptions struct {
	Limit    int
	Offset   int
	SortBy   string
	SortType string
}

var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

// OrderClause sanitizes sort input against a column allowlist; anything
// unrecognized falls back to newest first.
func (o ListOptions) OrderClause(table string) string {
	column := o.SortBy
	if !sortableColumns[column] {
		column = "created_at"
	}
	direction := "DESC"
	if o.SortType == "asc" {
		direction = "ASC"
	}
	return table + "." + column + " " + direction
}
