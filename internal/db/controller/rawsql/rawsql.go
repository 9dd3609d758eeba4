// Package rawsql executes caller-supplied SQL verbatim against the
// database.
//
// This is an unsafe administrative operation: statements are passed
// through with no parameterization and no statement-type restriction.
// SELECT, INSERT, UPDATE, DELETE and DDL are all permitted. The only
// caller must be the token-gated admin SQL console.
package rawsql

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Execute runs the given SQL statement verbatim and returns the result
// rows as a slice of column-name keyed maps. Statements that produce no
// rows return an empty slice.
func Execute(db *gorm.DB, query string) ([]map[string]interface{}, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	rows, err := db.Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0)

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			// drivers hand back []byte for text columns
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}

			row[column] = values[i]
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
