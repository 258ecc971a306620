// redis.go
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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/models"
)

const (
	collectionGuards      = "guards"
	collectionInspections = "inspections"
	collectionExercises   = "exercises"
)

// Redis stores each collection as an id list, for insertion order,
// plus a hash of id to JSON document. The credential lives under its own key.
type Redis struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to REDIS_ADDR and checks the connection
func OpenRedis(ctx context.Context, cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedis(client, cfg.RedisKeyPrefix), nil
}

// NewRedis wraps an existing client
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) idsKey(collection string) string  { return r.prefix + ":" + collection + ":ids" }
func (r *Redis) docsKey(collection string) string { return r.prefix + ":" + collection + ":docs" }
func (r *Redis) userKey() string                  { return r.prefix + ":user" }

func (r *Redis) put(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.docsKey(collection), id, data)
		pipe.RPush(ctx, r.idsKey(collection), id)
		return nil
	})
	return err
}

func (r *Redis) remove(ctx context.Context, collection string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.LRem(ctx, r.idsKey(collection), 0, id)
		}
		pipe.HDel(ctx, r.docsKey(collection), ids...)
		return nil
	})
	return err
}

// list decodes every document of a collection in insertion order
func list[T any](ctx context.Context, r *Redis, collection string) ([]T, error) {
	items := []T{}
	ids, err := r.client.LRange(ctx, r.idsKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return items, nil
	}
	docs, err := r.client.HMGet(ctx, r.docsKey(collection), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Redis) ListGuards(ctx context.Context) ([]models.Guard, error) {
	return list[models.Guard](ctx, r, collectionGuards)
}

func (r *Redis) AddGuard(ctx context.Context, g models.Guard) (models.Guard, error) {
	g.ID = newID()
	g.CreatedAt = now()
	if err := r.put(ctx, collectionGuards, g.ID, g); err != nil {
		return models.Guard{}, fmt.Errorf("failed to add guard: %w", err)
	}
	return g, nil
}

// DeleteGuard removes dependents first and the guard last.
// A failure part way leaves the guard in place, so a retry completes the cascade.
func (r *Redis) DeleteGuard(ctx context.Context, guardID string) error {
	inspections, err := r.ListInspections(ctx)
	if err != nil {
		return err
	}
	var inspectionIDs []string
	for _, i := range inspections {
		if i.GuardID == guardID {
			inspectionIDs = append(inspectionIDs, i.ID)
		}
	}
	if err := r.remove(ctx, collectionInspections, inspectionIDs...); err != nil {
		return fmt.Errorf("failed to delete inspections of guard %s: %w", guardID, err)
	}

	exercises, err := r.ListExercises(ctx)
	if err != nil {
		return err
	}
	var exerciseIDs []string
	for _, e := range exercises {
		if e.GuardID == guardID {
			exerciseIDs = append(exerciseIDs, e.ID)
		}
	}
	if err := r.remove(ctx, collectionExercises, exerciseIDs...); err != nil {
		return fmt.Errorf("failed to delete exercises of guard %s: %w", guardID, err)
	}

	if err := r.remove(ctx, collectionGuards, guardID); err != nil {
		return fmt.Errorf("failed to delete guard %s: %w", guardID, err)
	}
	return nil
}

func (r *Redis) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	return list[models.Inspection](ctx, r, collectionInspections)
}

func (r *Redis) AddInspection(ctx context.Context, i models.Inspection) (models.Inspection, error) {
	i.ID = newID()
	i.Date = now()
	if err := r.put(ctx, collectionInspections, i.ID, i); err != nil {
		return models.Inspection{}, fmt.Errorf("failed to add inspection: %w", err)
	}
	return i, nil
}

func (r *Redis) DeleteInspection(ctx context.Context, inspectionID string) error {
	if err := r.remove(ctx, collectionInspections, inspectionID); err != nil {
		return fmt.Errorf("failed to delete inspection %s: %w", inspectionID, err)
	}
	return nil
}

func (r *Redis) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return list[models.Exercise](ctx, r, collectionExercises)
}

func (r *Redis) AddExercise(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	e.ID = newID()
	e.Date = now()
	if err := r.put(ctx, collectionExercises, e.ID, e); err != nil {
		return models.Exercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	return e, nil
}

func (r *Redis) DeleteExercise(ctx context.Context, exerciseID string) error {
	if err := r.remove(ctx, collectionExercises, exerciseID); err != nil {
		return fmt.Errorf("failed to delete exercise %s: %w", exerciseID, err)
	}
	return nil
}

// SeedCredential writes u only if no credential is stored yet
func (r *Redis) SeedCredential(ctx context.Context, u models.User) (models.User, error) {
	u.CreatedAt = now()
	data, err := json.Marshal(u)
	if err != nil {
		return models.User{}, err
	}
	if err := r.client.SetNX(ctx, r.userKey(), data, 0).Err(); err != nil {
		return models.User{}, fmt.Errorf("failed to seed credential: %w", err)
	}
	stored, found, err := r.user(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, errors.New("credential missing after seed")
	}
	return stored, nil
}

func (r *Redis) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	u, found, err := r.user(ctx)
	if err != nil {
		return "", err
	}
	return verify(u, found, username, password)
}

func (r *Redis) user(ctx context.Context) (models.User, bool, error) {
	raw, err := r.client.Get(ctx, r.userKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to read credential: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, false, fmt.Errorf("failed to decode credential: %w", err)
	}
	return u, true, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
