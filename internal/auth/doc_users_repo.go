package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const UsersCollection = "users"

// DocUsersRepo keeps users in the document store. It backs dev setups running on the
// in-memory store, where no postgres is around. Username uniqueness is only checked,
// not enforced by the backend.
type DocUsersRepo struct {
	store store.Store
}

func NewDocUsersRepo(s store.Store) *DocUsersRepo {
	return &DocUsersRepo{
		store: s,
	}
}

type userDoc struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	CoachID      string `json:"coachId,omitempty"`
}

func (r *DocUsersRepo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.docusers.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.GetByUsername(ctx, user.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if user.CoachID != "" {
		if _, err := r.Get(ctx, user.CoachID); err != nil {
			return nil, fmt.Errorf("coach %s: %w", user.CoachID, err)
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CoachID:      user.CoachID,
	}
	if _, err := r.store.Write(ctx, UsersCollection, user.ID, doc, false); err != nil {
		return nil, fmt.Errorf("write user: %w", err)
	}
	return &user, nil
}

func (r *DocUsersRepo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.docusers.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := r.store.Get(ctx, UsersCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return doc2user(*doc)
}

func (r *DocUsersRepo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.docusers.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.Query(ctx, store.Query{
		Collection: UsersCollection,
		Filters:    []store.Filter{store.Eq("username", username)},
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}
	return doc2user(docs[0])
}

func doc2user(doc store.Document) (*User, error) {
	var d userDoc
	if err := doc.Decode(&d); err != nil {
		return nil, err
	}
	return &User{
		ID:           doc.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		CoachID:      d.CoachID,
	}, nil
}
