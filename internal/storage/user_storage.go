package storage

import (
	"database/sql"
	"errors"

	"TranscriptSummarizer_Backend/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// sqlite extended result code for a UNIQUE constraint violation.
const sqliteConstraintUnique = 2067

// UserStorage is the credential store adapter: single-row operations on the
// users table. The password hash is only ever read by lookups that feed the
// login path, never by List.
type UserStorage struct {
	db *sql.DB
}

func NewUserStorage(db *sql.DB) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) Create(name, email, passwordHash string) (models.User, error) {
	res, err := s.db.Exec(
		"INSERT INTO users(name, email, password_hash) VALUES(?, ?, ?)",
		name, email, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

func (s *UserStorage) GetByEmail(email string) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, name, email, password_hash FROM users WHERE email = ?", email)
	return scanUser(row)
}

func (s *UserStorage) GetByID(id int64) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, name, email, password_hash FROM users WHERE id = ?", id)
	return scanUser(row)
}

// List returns every user without the password hash, in insertion order.
func (s *UserStorage) List() ([]models.PublicUser, error) {
	rows, err := s.db.Query("SELECT id, email, name FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.PublicUser, 0)
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.ID, &u.Email, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update overwrites the fields that are non-empty and keeps the rest.
// Returns the updated row.
func (s *UserStorage) Update(id int64, name, email, passwordHash string) (models.User, error) {
	res, err := s.db.Exec(`
		UPDATE users SET
			name = COALESCE(NULLIF(?, ''), name),
			email = COALESCE(NULLIF(?, ''), email),
			password_hash = COALESCE(NULLIF(?, ''), password_hash)
		WHERE id = ?`,
		name, email, passwordHash, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}
	return s.GetByID(id)
}

func (s *UserStorage) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique
}
