package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

const UsersSchema = `
CREATE TABLE IF NOT EXISTS public.app_user
(
    id            VARCHAR PRIMARY KEY,
    username      VARCHAR NOT NULL UNIQUE,
    password_hash VARCHAR NOT NULL,
    role          VARCHAR NOT NULL,
    coach_id      VARCHAR REFERENCES public.app_user (id)
);
`

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, UsersSchema); err != nil {
		return fmt.Errorf("create users schema: %w", err)
	}
	return nil
}

func (r *UsersRepo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("user.id", user.ID))

	var coachID *string
	if user.CoachID != "" {
		coachID = &user.CoachID
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, username, password_hash, role, coach_id) VALUES ($1, $2, $3, $4, $5);`,
		user.ID, user.Username, user.PasswordHash, string(user.Role), coachID,
	); err != nil {
		switch pkg.PgErrorCode(err) {
		case pkg.PgUniqueViolation:
			return nil, ErrUserExists
		case pkg.PgForeignKeyViolation:
			return nil, fmt.Errorf("coach %s: %w", user.CoachID, ErrUserNotFound)
		}
		return nil, err
	}

	return &user, nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *UsersRepo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) get(ctx context.Context, where string, arg any) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, password_hash, role, coach_id FROM app_user `+where+`;`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users, err := rows2users(rows)
	if err != nil {
		return nil, err
	}
	if len(users) != 1 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func rows2users(rows pgx.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		var u User
		var role string
		var coachID *string
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &coachID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		u.Role = Role(role)
		if coachID != nil {
			u.CoachID = *coachID
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return users, nil
}
