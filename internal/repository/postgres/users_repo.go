package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/publishine/publishine-backend/internal/models"
	"github.com/publishine/publishine-backend/internal/repository"
)

const userColumns = `id, name, email, password_hash, role, is_verified, is_approved, balance,
	otp, otp_expires, profile_picture, bio, linked_in, contact_number, created_at, updated_at`

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, name, email, password_hash, role, otp, otp_expires)
		 VALUES($1,$2,$3,$4,NULLIF($5,''),$6,$7)`,
		id, u.Name, u.Email, u.PasswordHash, u.Role, u.OTP, u.OTPExpires,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return models.User{}, repository.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p models.ProfilePatch) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`UPDATE users
		 SET role=$2, name=$3, bio=$4, linked_in=$5, contact_number=$6,
		     profile_picture=COALESCE(NULLIF($7,''), profile_picture), updated_at=now()
		 WHERE id=$1
		 RETURNING `+userColumns,
		id, p.Role, p.Name, p.Bio, p.LinkedIn, p.ContactNumber, p.ProfilePicture))
}

func (r *usersRepo) SetOTP(ctx context.Context, id, code string, expires time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET otp=$2, otp_expires=$3, updated_at=now() WHERE id=$1`,
		id, code, expires)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *usersRepo) scanOne(row pgx.Row) (models.User, error) {
	var u models.User
	var name, role, otp, profilePicture, bio, linkedIn, contactNumber *string
	err := row.Scan(&u.ID, &name, &u.Email, &u.PasswordHash, &role, &u.IsVerified,
		&u.IsApproved, &u.Balance, &otp, &u.OTPExpires, &profilePicture, &bio,
		&linkedIn, &contactNumber, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, err
	}
	u.Name = deref(name)
	u.Role = deref(role)
	u.OTP = deref(otp)
	u.ProfilePicture = deref(profilePicture)
	u.Bio = deref(bio)
	u.LinkedIn = deref(linkedIn)
	u.ContactNumber = deref(contactNumber)
	return u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
