// sql.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/database"
	"github.com/localnerve/guardroster/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SQL is the GORM backed repository
type SQL struct {
	db *gorm.DB
}

// OpenSQL connects with the configured dialect and migrates the schema
func OpenSQL(cfg *config.Config, log *zap.SugaredLogger) (*SQL, error) {
	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return NewSQL(db), nil
}

// NewSQL wraps an already migrated connection
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) ListGuards(ctx context.Context) ([]models.Guard, error) {
	guards := []models.Guard{}
	if err := s.db.WithContext(ctx).Order("id").Find(&guards).Error; err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}
	return guards, nil
}

func (s *SQL) AddGuard(ctx context.Context, g models.Guard) (models.Guard, error) {
	g.ID = newID()
	g.CreatedAt = now()
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return models.Guard{}, fmt.Errorf("failed to add guard: %w", err)
	}
	return g, nil
}

// DeleteGuard removes the guard and all its records in one transaction
func (s *SQL) DeleteGuard(ctx context.Context, guardID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guard_id = ?", guardID).Delete(&models.Inspection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("guard_id = ?", guardID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", guardID).Delete(&models.Guard{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete guard %s: %w", guardID, err)
	}
	return nil
}

func (s *SQL) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	inspections := []models.Inspection{}
	if err := s.db.WithContext(ctx).Order("id").Find(&inspections).Error; err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return inspections, nil
}

func (s *SQL) AddInspection(ctx context.Context, i models.Inspection) (models.Inspection, error) {
	i.ID = newID()
	i.Date = now()
	if err := s.db.WithContext(ctx).Create(&i).Error; err != nil {
		return models.Inspection{}, fmt.Errorf("failed to add inspection: %w", err)
	}
	return i, nil
}

func (s *SQL) DeleteInspection(ctx context.Context, inspectionID string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", inspectionID).Delete(&models.Inspection{}).Error; err != nil {
		return fmt.Errorf("failed to delete inspection %s: %w", inspectionID, err)
	}
	return nil
}

func (s *SQL) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	exercises := []models.Exercise{}
	if err := s.db.WithContext(ctx).Order("id").Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (s *SQL) AddExercise(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	e.ID = newID()
	e.Date = now()
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Exercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	return e, nil
}

func (s *SQL) DeleteExercise(ctx context.Context, exerciseID string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", exerciseID).Delete(&models.Exercise{}).Error; err != nil {
		return fmt.Errorf("failed to delete exercise %s: %w", exerciseID, err)
	}
	return nil
}

// SeedCredential inserts u only when the users table is empty
func (s *SQL) SeedCredential(ctx context.Context, u models.User) (models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Order("created_at").First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("failed to read credential: %w", err)
	}

	u.CreatedAt = now()
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to seed credential: %w", err)
	}
	return u, nil
}

func (s *SQL) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return verify(u, false, username, password)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return verify(u, true, username, password)
}

func (s *SQL) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQL) Close() error {
	return database.Close(s.db)
}
