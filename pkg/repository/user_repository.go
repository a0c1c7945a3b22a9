package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/studentscope/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user row for SQL operations
type userSQL struct {
	UserID    string         `db:"user_id"`
	Email     sql.NullString `db:"email"`
	Name      string         `db:"name"`
	CreatedAt time.Time      `db:"created_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetOrCreateByEmail looks up a user by normalized email, creating one if
// absent. The unique constraint on email makes concurrent duplicate calls
// converge on the same row.
func (r *UserRepository) GetOrCreateByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	if u, err := r.getByEmail(ctx, email); err == nil {
		return u, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	query := `INSERT INTO users (user_id, email, created_at) VALUES (?, ?, ?)
	          ON CONFLICT(email) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), email, time.Now().UTC()); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	// re-read; a concurrent insert may have won the conflict
	u, err := r.getByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("read created user: %w", err)
	}
	return u, true, nil
}

// GetUser retrieves a user by id
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u userSQL
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE user_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return toDomainUser(&u), nil
}

// UpdateUserName sets the display name, retrying on SQLite lock contention
func (r *UserRepository) UpdateUserName(ctx context.Context, id, name string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE users SET name = ? WHERE user_id = ?", name, id)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update user name: %w", err)}
		}
		return nil
	})
}

// ListUsers returns all users ordered by creation time
func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var rows []userSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, u := range rows {
		users[i] = toDomainUser(&u)
	}
	return users, nil
}

func (r *UserRepository) getByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u userSQL
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return toDomainUser(&u), nil
}

func toDomainUser(u *userSQL) *domain.User {
	user := &domain.User{
		ID:        u.UserID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Email.Valid {
		user.Email = u.Email.String
	}
	return user
}
