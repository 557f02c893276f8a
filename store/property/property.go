package property

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/store"
	"github.com/pandodao/money-tracker/store/db"
)

const table = "properties"

type propertyStore struct {
	db *db.DB
}

func New(db *db.DB) core.PropertyStore {
	return &propertyStore{db: db}
}

func (s *propertyStore) Get(ctx context.Context, key string, value any) error {
	var raw []byte
	err := s.db.Builder.Select("value").
		From(table).
		Where(sq.Eq{"name": key}).
		RunWith(s.db.DB).
		QueryRowContext(ctx).
		Scan(&raw)

	switch {
	case err == nil:
		return json.Unmarshal(raw, value)
	case store.IsErrNotFound(err):
		return nil
	default:
		return err
	}
}

func (s *propertyStore) Set(ctx context.Context, key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	r, err := s.db.Builder.Update(table).
		Set("value", string(jsonValue)).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"name": key}).
		RunWith(s.db.DB).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	_, err = s.db.Builder.Insert(table).
		Columns("name", "value").
		Values(key, string(jsonValue)).
		RunWith(s.db.DB).
		ExecContext(ctx)
	return err
}

func (s *propertyStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Builder.Delete(table).
		Where(sq.Eq{"name": key}).
		RunWith(s.db.DB).
		ExecContext(ctx)
	return err
}
