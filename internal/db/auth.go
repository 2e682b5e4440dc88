package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetStaffPassword creates the staff user or replaces their password.
func (s *Store) SetStaffPassword(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := StaffUser{Username: username, PasswordHash: string(hash)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&user).Error
}

// Authenticate checks a staff login. Unknown users and wrong passwords both
// return ErrInvalidLogin.
func (s *Store) Authenticate(ctx context.Context, username, password string) (StaffUser, error) {
	var user StaffUser
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StaffUser{}, ErrInvalidLogin
	}
	if err != nil {
		return StaffUser{}, fmt.Errorf("find staff user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return StaffUser{}, ErrInvalidLogin
	}
	return user, nil
}

func (s *Store) SaveSession(ctx context.Context, session *Session) error {
	return s.db.WithContext(ctx).Save(session).Error
}

// LoadSession returns ErrNotFound for missing and expired sessions.
func (s *Store) LoadSession(ctx context.Context, id string, now time.Time) (Session, error) {
	var session Session
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.ExpiresAt.After(now) {
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&Session{}).Error
}
