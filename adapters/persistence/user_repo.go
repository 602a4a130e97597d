package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, college_id, department_id, section_id, name, email, phone, role, year, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID, &u.CollegeID, &u.DepartmentID, &u.SectionID,
		&u.Name, &u.Email, &u.Phone, &u.Role, &u.Year,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.CollegeID, u.DepartmentID, u.SectionID,
		u.Name, u.Email, u.Phone, u.Role, u.Year,
		u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("user", "email", u.Email)
		}
		return apperror.NewInternal("failed to insert user", err)
	}
	return nil
}

func (r *postgresUserRepo) SaveBatch(ctx context.Context, users []*user.User) error {
	if len(users) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for _, u := range users {
		batch.Queue(query,
			u.ID, u.CollegeID, u.DepartmentID, u.SectionID,
			u.Name, u.Email, u.Phone, u.Role, u.Year,
			u.PasswordHash, u.CreatedAt, u.UpdatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range users {
		if _, err := results.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperror.NewConflict("user", "email", pgErr.Detail)
			}
			return apperror.NewInternal("failed to insert user batch", err)
		}
	}
	return nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *postgresUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	builder := psql.Select(userColumns).From("users").OrderBy("created_at DESC")

	if filter.CollegeID != nil {
		builder = builder.Where(sq.Eq{"college_id": *filter.CollegeID})
	}
	if filter.DepartmentID != nil {
		builder = builder.Where(sq.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.SectionID != nil {
		builder = builder.Where(sq.Eq{"section_id": *filter.SectionID})
	}
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": *filter.Role})
	}
	if filter.Year != nil {
		builder = builder.Where(sq.Eq{"year": *filter.Year})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"name": "%" + filter.Search + "%"},
			sq.ILike{"email": "%" + filter.Search + "%"},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list users", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(
			&u.ID, &u.CollegeID, &u.DepartmentID, &u.SectionID,
			&u.Name, &u.Email, &u.Phone, &u.Role, &u.Year,
			&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating user rows", err)
	}
	return users, nil
}

func (r *postgresUserRepo) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET college_id = $2, department_id = $3, section_id = $4,
		    name = $5, email = $6, phone = $7, role = $8, year = $9,
		    password_hash = $10, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		u.ID, u.CollegeID, u.DepartmentID, u.SectionID,
		u.Name, u.Email, u.Phone, u.Role, u.Year, u.PasswordHash,
	)
	if err != nil {
		return apperror.NewInternal("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
