package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/models"
)

const timestampLayout = time.RFC3339Nano

// Save validates the input and appends a new profile. Nothing is written when
// validation fails.
func (s *Store) Save(ctx context.Context, in models.ProfileInput) (models.Profile, error) {
	if err := in.Validate(); err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		Name:       strings.TrimSpace(in.Name),
		Age:        in.Age,
		Gender:     in.Gender,
		Conditions: models.NormalizeConditions(in.Conditions),
		Goal:       in.Goal,
		CreatedAt:  s.now().UTC(),
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(name, age, gender, conditions, goal, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Profile{}, fmt.Errorf("storage.Save(): prepare insert: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx,
		profile.Name,
		profile.Age,
		profile.Gender,
		models.JoinConditions(profile.Conditions),
		profile.Goal,
		profile.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return models.Profile{}, fmt.Errorf("storage.Save(): insert profile: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Profile{}, fmt.Errorf("storage.Save(): read new id: %w", err)
	}
	profile.ID = id

	s.logger.Info("profile saved", zap.Int64("id", id), zap.String("goal", profile.Goal))
	return profile, nil
}

// ListAll returns every profile, newest first. No rows gives an empty slice.
func (s *Store) ListAll(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, age, gender, conditions, goal, created_at
		FROM users
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage.ListAll(): query profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("storage.ListAll(): %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.ListAll(): iterate profiles: %w", err)
	}
	return profiles, nil
}

// FindByID returns the profile with the given id or a NotFoundError.
func (s *Store) FindByID(ctx context.Context, id int64) (models.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, age, gender, conditions, goal, created_at FROM users WHERE id = ?", id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, apperrors.NewNotFoundError(
				"Profile ID not found. Choose a valid ID from the table above.", "profile", id)
		}
		return models.Profile{}, fmt.Errorf("storage.FindByID(): %w", err)
	}
	return p, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage.Count(): %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		p          models.Profile
		conditions sql.NullString
		createdStr string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &conditions, &p.Goal, &createdStr); err != nil {
		return models.Profile{}, err
	}

	p.Conditions = models.SplitConditions(conditions.String)

	createdAt, err := time.Parse(timestampLayout, createdStr)
	if err != nil {
		return models.Profile{}, fmt.Errorf("parse created_at %q: %w", createdStr, err)
	}
	p.CreatedAt = createdAt
	return p, nil
}
