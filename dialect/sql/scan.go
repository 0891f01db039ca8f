package sql

import (
	"fmt"
	"reflect"
)

// ScanSlice scans all rows into v, which must be a non-nil pointer to a
// slice. Slice elements may be basic types (one column per row) or structs
// whose exported fields match the selected columns by position. Nullable
// columns scan into pointer-typed fields.
func ScanSlice(rows ColumnScanner, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("sql/scan: invalid type %T. expected non-nil pointer to slice", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Slice {
		return fmt.Errorf("sql/scan: invalid type %T. expected pointer to slice", v)
	}
	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("sql/scan: %w", err)
	}
	elem := rv.Type().Elem()
	for rows.Next() {
		ev := reflect.New(elem).Elem()
		dest, err := scanDest(ev, len(columns))
		if err != nil {
			return err
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("sql/scan: %w", err)
		}
		rv.Set(reflect.Append(rv, ev))
	}
	return rows.Err()
}

func scanDest(ev reflect.Value, columns int) ([]any, error) {
	if ev.Kind() == reflect.Struct && ev.Type().PkgPath() != "time" {
		n := ev.NumField()
		if n != columns {
			return nil, fmt.Errorf("sql/scan: columns do not match (%d != %d struct fields)", columns, n)
		}
		dest := make([]any, n)
		for i := 0; i < n; i++ {
			if f := ev.Type().Field(i); f.PkgPath != "" {
				return nil, fmt.Errorf("sql/scan: unexported field %q", f.Name)
			}
			dest[i] = ev.Field(i).Addr().Interface()
		}
		return dest, nil
	}
	if columns != 1 {
		return nil, fmt.Errorf("sql/scan: %d columns for a single-value destination", columns)
	}
	return []any{ev.Addr().Interface()}, nil
}

// ScanInt scans a single int from the first row. Used for COUNT queries.
func ScanInt(rows ColumnScanner) (int, error) {
	n, err := ScanInt64(rows)
	return int(n), err
}

// ScanInt64 scans a single int64 from the first row.
func ScanInt64(rows ColumnScanner) (int64, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("sql/scan: no rows")
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, err
	}
	return n, rows.Err()
}

// ScanBool scans a single bool from the first row. Used for EXISTS queries.
func ScanBool(rows ColumnScanner) (bool, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, err
		}
		return false, nil
	}
	var b bool
	if err := rows.Scan(&b); err != nil {
		return false, err
	}
	return b, rows.Err()
}
