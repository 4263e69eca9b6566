package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sm8ta/motodash/internal/core/domain"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrConstraint marks writes rejected by a table constraint, e.g. a duplicate id.
var ErrConstraint = errors.New("constraint violation")

// Row is a record type that can be scanned from a row in schema column order.
type Row[T any] interface {
	*T
	ScanDest() []interface{}
}

// Repository stores one resource type in the table named by its schema.
type Repository[T any, PT Row[T]] struct {
	db     *sql.DB
	schema domain.Schema
}

func NewRepository[T any, PT Row[T]](db *sql.DB, schema domain.Schema) *Repository[T, PT] {
	return &Repository[T, PT]{
		db:     db,
		schema: schema,
	}
}

func (r *Repository[T, PT]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s, rowid DESC`,
		r.selectList(), r.schema.Table, r.schema.OrderBy)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.schema.Resource, err)
	}
	defer rows.Close()

	records := make([]*T, 0)
	for rows.Next() {
		record := new(T)
		if err := rows.Scan(PT(record).ScanDest()...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.schema.Resource, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, r.selectList(), r.schema.Table)

	record := new(T)
	err := r.db.QueryRowContext(ctx, query, id).Scan(PT(record).ScanDest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.schema.Resource, err)
	}

	return record, nil
}

func (r *Repository[T, PT]) Insert(ctx context.Context, fields domain.Fields) error {
	columns, args, err := r.columnsOf(fields)
	if err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.schema.Table, strings.Join(columns, ", "), placeholders)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.wrap("insert", err)
	}
	return nil
}

// Patch sets only the given columns. A missing id yields domain.ErrNotFound.
func (r *Repository[T, PT]) Patch(ctx context.Context, id string, fields domain.Fields) error {
	columns, args, err := r.columnsOf(fields)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return domain.ErrNoChanges
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = column + " = ?"
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`,
		r.schema.Table, strings.Join(assignments, ", "))

	result, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return r.wrap("update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes the record if present. Deleting a missing id is not an error.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.schema.Table)

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.schema.Resource, err)
	}
	return nil
}

func (r *Repository[T, PT]) selectList() string {
	return strings.Join(r.schema.Columns, ", ")
}

// columnsOf returns the field names in a stable order with their values,
// refusing anything the schema does not know.
func (r *Repository[T, PT]) columnsOf(fields domain.Fields) ([]string, []interface{}, error) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		if !r.schema.HasColumn(column) {
			return nil, nil, fmt.Errorf("unknown %s column %q", r.schema.Resource, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	args := make([]interface{}, len(columns))
	for i, column := range columns {
		args[i] = fields[column]
	}
	return columns, args, nil
}

func (r *Repository[T, PT]) wrap(op string, err error) error {
	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("failed to %s %s: %w: %v", op, r.schema.Resource, ErrConstraint, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, r.schema.Resource, err)
}
