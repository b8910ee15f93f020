package backup

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultTables is the export order.
var DefaultTables = []string{
	"customers",
	"items",
	"item_groups",
	"variants",
	"kitchens",
	"dining_tables",
	"invoices",
	"active_orders",
	"kitchen_saved",
	"picked_up_items",
	"trip_reports",
	"employees",
	"users",
	"system_settings",
}

// GormSource reads whole tables through gorm. Columns listed in Exclude are
// left out of the export.
type GormSource struct {
	DB      *gorm.DB
	Names   []string
	Exclude map[string][]string
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{
		DB:    db,
		Names: DefaultTables,
		Exclude: map[string][]string{
			"users": {"password_hash"},
		},
	}
}

func (g *GormSource) Tables() []string {
	return g.Names
}

func (g *GormSource) Dump(ctx context.Context, table string) ([]string, [][]interface{}, error) {
	rows, err := g.DB.WithContext(ctx).Table(table).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	skip := make(map[int]bool)
	for _, ex := range g.Exclude[table] {
		for i, c := range cols {
			if c == ex {
				skip[i] = true
			}
		}
	}
	headers := make([]string, 0, len(cols))
	for i, c := range cols {
		if !skip[i] {
			headers = append(headers, c)
		}
	}

	var out [][]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]interface{}, 0, len(headers))
		for i, v := range values {
			if !skip[i] {
				row = append(row, cellValue(v))
			}
		}
		out = append(out, row)
	}
	return headers, out, rows.Err()
}

// cellValue flattens driver values into something a cell can hold.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return t
	}
}
