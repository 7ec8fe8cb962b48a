package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const Schema = `
CREATE TABLE IF NOT EXISTS public.document
(
    collection VARCHAR     NOT NULL,
    id         VARCHAR     NOT NULL,
    data       JSONB       NOT NULL DEFAULT '{}',
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS ix_document_user_id ON public.document (collection, (data ->> 'userId'));
`

var _ store.Store = (*Store)(nil)

// Store keeps every collection in one JSONB table, and signals changes through the notifier.
type Store struct {
	db       *pgxpool.Pool
	notifier store.Notifier
}

func New(db *pgxpool.Pool, notifier store.Notifier) *Store {
	return &Store{
		db:       db,
		notifier: notifier,
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create document schema: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, q store.Query) (_ []store.Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.query")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", q.Collection))

	sql, args, err := buildQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs, err := rows2documents(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("documents", len(docs)))

	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (_ *store.Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))
	span.SetAttributes(attribute.String("id", id))

	rows, err := s.db.Query(
		ctx,
		`SELECT collection, id, data, updated_at FROM document WHERE collection = $1 AND id = $2;`,
		collection, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs, err := rows2documents(rows)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, store.ErrNotFound
	}

	return &docs[0], nil
}

func (s *Store) Write(ctx context.Context, collection, id string, fields any, merge bool) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.write")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))
	span.SetAttributes(attribute.Bool("merge", merge))

	data, err := store.MarshalFields(fields)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}
	span.SetAttributes(attribute.String("id", id))

	// jsonb || overlays top level keys, same as store.MergeFields
	onConflict := `data = EXCLUDED.data`
	if merge {
		onConflict = `data = document.data || EXCLUDED.data`
	}

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO document (collection, id, data, updated_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (collection, id) DO UPDATE SET `+onConflict+`, updated_at = EXCLUDED.updated_at;`,
		collection, id, []byte(data), time.Now().UTC(),
	); err != nil {
		return "", err
	}

	if err := s.notifier.Notify(ctx, collection); err != nil {
		return "", fmt.Errorf("notify %s: %w", collection, err)
	}

	return id, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.pg.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))
	span.SetAttributes(attribute.String("id", id))

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM document WHERE collection = $1 AND id = $2;`,
		collection, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	if err := s.notifier.Notify(ctx, collection); err != nil {
		return fmt.Errorf("notify %s: %w", collection, err)
	}

	return nil
}

func (s *Store) Subscribe(ctx context.Context, q store.Query, onSnapshot func(store.Snapshot)) (store.Subscription, error) {
	// validate before listening, a broken query would only show up in the watch logs
	if _, _, err := buildQuery(q); err != nil {
		return nil, err
	}
	changes, stop, err := s.notifier.Listen(ctx, q.Collection)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", q.Collection, err)
	}
	return store.Watch(ctx, q, s.Query, changes, stop, onSnapshot), nil
}

var sqlOps = map[store.Op]string{
	store.OpEq:  "=",
	store.OpGte: ">=",
	store.OpLt:  "<",
}

func buildQuery(q store.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT collection, id, data, updated_at FROM document WHERE collection = $1`)
	args := []any{q.Collection}

	for _, f := range q.Filters {
		op, ok := sqlOps[f.Op]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter op: %s", f.Op)
		}

		args = append(args, f.Field)
		fieldArg := len(args)

		var value any
		var column string
		switch v := f.Value.(type) {
		case time.Time:
			column = fmt.Sprintf("(data ->> $%d::text)::timestamptz", fieldArg)
			value = v.UTC()
		case string:
			column = fmt.Sprintf("(data ->> $%d::text)", fieldArg)
			value = v
		case bool:
			column = fmt.Sprintf("(data ->> $%d::text)::boolean", fieldArg)
			value = v
		case int, int64, float64:
			column = fmt.Sprintf("(data ->> $%d::text)::numeric", fieldArg)
			value = v
		default:
			return "", nil, fmt.Errorf("unsupported filter value type for %s: %T", f.Field, f.Value)
		}

		args = append(args, value)
		fmt.Fprintf(&sb, " AND %s %s $%d", column, op, len(args))
	}

	if q.OrderBy != "" {
		args = append(args, q.OrderBy)
		direction := "ASC"
		if q.Descending {
			direction = "DESC"
		}
		// RFC 3339 strings with different fractional precision do not sort lexically
		fieldArg := len(args)
		fmt.Fprintf(&sb,
			` ORDER BY CASE WHEN data ->> $%d::text ~ '^\d{4}-\d{2}-\d{2}T' THEN (data ->> $%d::text)::timestamptz END %s NULLS LAST,`+
				` data -> $%d::text %s NULLS LAST, id`,
			fieldArg, fieldArg, direction, fieldArg, direction,
		)
	} else {
		sb.WriteString(" ORDER BY id")
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String() + ";", args, nil
}

func rows2documents(rows pgx.Rows) ([]store.Document, error) {
	var docs []store.Document
	for rows.Next() {
		var d store.Document
		var data []byte
		if err := rows.Scan(&d.Collection, &d.ID, &data, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		d.Data = data
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return docs, nil
		}
		return nil, err
	}
	return docs, nil
}
