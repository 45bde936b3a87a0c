package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rl1809/partstore/internal/core/domain"
)

const partsTable = "parts"

// Goose dialect names of the supported SQL stores.
const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var partColumns = []string{
	"id",
	domain.FieldType,
	domain.FieldBrand,
	domain.FieldModel,
	domain.FieldQuantity,
	domain.FieldPrice,
}

// SQLAdapter stores parts in a relational table. The same statements serve
// MySQL, PostgreSQL and SQLite; only the placeholder format differs.
type SQLAdapter struct {
	db      *sql.DB
	dialect string
	builder sq.StatementBuilderType
}

func NewSQLAdapter(db *sql.DB, dialect string) *SQLAdapter {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		format = sq.Dollar
	}

	return &SQLAdapter{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(format),
	}
}

func (s *SQLAdapter) Migrate(ctx context.Context) error {
	return ApplyMigrations(ctx, s.db, s.dialect)
}

func (s *SQLAdapter) CreatePart(ctx context.Context, part domain.Part) error {
	query, args, err := s.builder.
		Insert(partsTable).
		Columns(partColumns...).
		Values(part.ID, nullable(part.Type), nullable(part.Brand), nullable(part.Model),
			nullable(part.Quantity), nullable(part.Price)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert part: %w", err)
	}

	return nil
}

func (s *SQLAdapter) ListParts(ctx context.Context) ([]domain.Part, error) {
	query, args, err := s.builder.
		Select(partColumns...).
		From(partsTable).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()

	parts := []domain.Part{}
	for rows.Next() {
		var (
			p                 domain.Part
			typ, brand, model sql.NullString
			quantity, price   sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &typ, &brand, &model, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		p.Type = nullString(typ)
		p.Brand = nullString(brand)
		p.Model = nullString(model)
		p.Quantity = nullFloat(quantity)
		p.Price = nullFloat(price)
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}

	return parts, nil
}

func (s *SQLAdapter) UpdatePart(ctx context.Context, id string, fields domain.Fields) (int64, error) {
	cols := fields.Columns()
	if len(cols) == 0 {
		return s.countPart(ctx, id)
	}

	query, args, err := s.builder.
		Update(partsTable).
		SetMap(cols).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update part: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update part: %w", err)
	}

	return rows, nil
}

func (s *SQLAdapter) DeletePart(ctx context.Context, id string) (int64, error) {
	query, args, err := s.builder.
		Delete(partsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete part: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete part: %w", err)
	}

	return rows, nil
}

func (s *SQLAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLAdapter) Close() error {
	return s.db.Close()
}

func (s *SQLAdapter) countPart(ctx context.Context, id string) (int64, error) {
	query, args, err := s.builder.
		Select("COUNT(*)").
		From(partsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count part: %w", err)
	}

	return n, nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
