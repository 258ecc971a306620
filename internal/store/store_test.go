package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) Repository
}

// containerBackends is filled by TestMain when containers are running
var containerBackends []backend

func backends() []backend {
	return append([]backend{
		{"memory", func(t *testing.T) Repository { return NewMemory() }},
		{"sql", func(t *testing.T) Repository {
			repo, err := OpenSQL(&config.Config{DBType: "sqlite", DBDatabase: ":memory:", Env: "prod"}, nil)
			require.NoError(t, err)
			t.Cleanup(func() { repo.Close() })
			return repo
		}},
		{"redis", func(t *testing.T) Repository {
			mr := miniredis.RunT(t)
			repo := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
			t.Cleanup(func() { repo.Close() })
			return repo
		}},
	}, containerBackends...)
}

func forEachBackend(t *testing.T, fn func(t *testing.T, repo Repository)) {
	for _, b := range backends() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.open(t))
		})
	}
}

func guardIDs(guards []models.Guard) []string {
	ids := []string{}
	for _, g := range guards {
		ids = append(ids, g.ID)
	}
	return ids
}

func inspectionGuards(inspections []models.Inspection) []string {
	ids := []string{}
	for _, i := range inspections {
		ids = append(ids, i.GuardID)
	}
	return ids
}

func TestRepository_AddAndListGuards(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		guards, err := repo.ListGuards(ctx)
		require.NoError(t, err)
		assert.Empty(t, guards)

		first, err := repo.AddGuard(ctx, models.Guard{FirstName: "דוד", LastName: "כהן", IDNumber: "123456789", Phone: "0501234567"})
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := repo.AddGuard(ctx, models.Guard{FirstName: "משה", LastName: "לוי", IDNumber: "987654321", Phone: "0527654321"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		guards, err = repo.ListGuards(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID, second.ID}, guardIDs(guards))
		assert.Equal(t, "דוד כהן", guards[0].FullName())
		assert.Equal(t, "0501234567", guards[0].Phone)
	})
}

func TestRepository_AddDoesNotDeduplicate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		g := models.Guard{FirstName: "דוד", LastName: "כהן", IDNumber: "123456789", Phone: "0501234567"}

		_, err := repo.AddGuard(ctx, g)
		require.NoError(t, err)
		_, err = repo.AddGuard(ctx, g)
		require.NoError(t, err)

		guards, err := repo.ListGuards(ctx)
		require.NoError(t, err)
		assert.Len(t, guards, 2)
	})
}

func TestRepository_InspectionRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		in := models.Inspection{
			GuardID:            "g-1",
			InspectorName:      "רונית",
			UniformComplete:    models.RatingExcellent,
			GuardBadgeValid:    models.RatingGood,
			SelectedProcedures: []models.ProcedureTest{{Procedure: "נוהל פתיחת שער", Rating: models.RatingExcellent}},
			InspectorNotes:     "ללא הערות",
		}

		added, err := repo.AddInspection(ctx, in)
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.False(t, added.Date.IsZero())

		list, err := repo.ListInspections(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		got := list[0]
		assert.Equal(t, added.ID, got.ID)
		assert.True(t, added.Date.Equal(got.Date))
		assert.Equal(t, models.RatingGood, got.GuardBadgeValid)
		assert.Equal(t, []models.ProcedureTest{{Procedure: "נוהל פתיחת שער", Rating: models.RatingExcellent}}, []models.ProcedureTest(got.SelectedProcedures))
		assert.Equal(t, "ללא הערות", got.InspectorNotes)
	})
}

func TestRepository_ExerciseRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		added, err := repo.AddExercise(ctx, models.Exercise{
			GuardID:               "g-1",
			InstructorName:        "יוסי",
			ExerciseType:          "חדירה",
			IdentifiedThreat:      true,
			IdentifiedThreatScore: 8,
			ResponseSpeed:         models.QualitativeExcellent,
			KabtEvaluation:        15,
			Duration:              45,
		})
		require.NoError(t, err)

		list, err := repo.ListExercises(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		got := list[0]
		assert.Equal(t, added.ID, got.ID)
		assert.True(t, got.IdentifiedThreat)
		assert.Equal(t, 8, got.IdentifiedThreatScore)
		assert.Equal(t, models.QualitativeExcellent, got.ResponseSpeed)
		assert.Equal(t, 15, got.KabtEvaluation)
		assert.Equal(t, 45, got.Duration)
	})
}

func TestRepository_DeleteMissingIsSuccess(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		assert.NoError(t, repo.DeleteGuard(ctx, "missing"))
		assert.NoError(t, repo.DeleteInspection(ctx, "missing"))
		assert.NoError(t, repo.DeleteExercise(ctx, "missing"))
	})
}

func TestRepository_DeleteSingleRecords(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()
		keep, err := repo.AddInspection(ctx, models.Inspection{GuardID: "g-1"})
		require.NoError(t, err)
		drop, err := repo.AddInspection(ctx, models.Inspection{GuardID: "g-1"})
		require.NoError(t, err)
		ex, err := repo.AddExercise(ctx, models.Exercise{GuardID: "g-1"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteInspection(ctx, drop.ID))
		require.NoError(t, repo.DeleteExercise(ctx, ex.ID))

		inspections, err := repo.ListInspections(ctx)
		require.NoError(t, err)
		require.Len(t, inspections, 1)
		assert.Equal(t, keep.ID, inspections[0].ID)

		exercises, err := repo.ListExercises(ctx)
		require.NoError(t, err)
		assert.Empty(t, exercises)
	})
}

func TestRepository_DeleteGuardCascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		david, err := repo.AddGuard(ctx, models.Guard{FirstName: "David", LastName: "Cohen", IDNumber: "123456789", Phone: "0501234567"})
		require.NoError(t, err)
		other, err := repo.AddGuard(ctx, models.Guard{FirstName: "Dana", LastName: "Levi", IDNumber: "111111111", Phone: "0541111111"})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err = repo.AddInspection(ctx, models.Inspection{GuardID: david.ID})
			require.NoError(t, err)
		}
		_, err = repo.AddExercise(ctx, models.Exercise{GuardID: david.ID})
		require.NoError(t, err)
		_, err = repo.AddInspection(ctx, models.Inspection{GuardID: other.ID})
		require.NoError(t, err)
		otherExercise, err := repo.AddExercise(ctx, models.Exercise{GuardID: other.ID})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteGuard(ctx, david.ID))

		guards, err := repo.ListGuards(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, guardIDs(guards))

		inspections, err := repo.ListInspections(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, inspectionGuards(inspections))

		exercises, err := repo.ListExercises(ctx)
		require.NoError(t, err)
		require.Len(t, exercises, 1)
		assert.Equal(t, otherExercise.ID, exercises[0].ID)
	})
}

func TestRepository_Credential(t *testing.T) {
	seed, err := models.NewUser("אשכול", "0123456", "token-abc")
	require.NoError(t, err)
	other, err := models.NewUser("intruder", "secret", "token-other")
	require.NoError(t, err)

	forEachBackend(t, func(t *testing.T, repo Repository) {
		ctx := context.Background()

		_, err := repo.VerifyCredential(ctx, "אשכול", "0123456")
		assert.ErrorIs(t, err, ErrUnauthorized)

		stored, err := repo.SeedCredential(ctx, seed)
		require.NoError(t, err)
		assert.Equal(t, "token-abc", stored.Token)

		// A second seed keeps the first credential
		stored, err = repo.SeedCredential(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, "אשכול", stored.Username)
		assert.Equal(t, "token-abc", stored.Token)

		token, err := repo.VerifyCredential(ctx, "אשכול", "0123456")
		require.NoError(t, err)
		assert.Equal(t, "token-abc", token)

		_, err = repo.VerifyCredential(ctx, "אשכול", "wrong")
		assert.ErrorIs(t, err, ErrUnauthorized)
		_, err = repo.VerifyCredential(ctx, "intruder", "secret")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestRepository_Ping(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		assert.NoError(t, repo.Ping(context.Background()))
	})
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	repo, err := Open(ctx, &config.Config{StoreBackend: config.BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, repo)

	mr := miniredis.RunT(t)
	repo, err = Open(ctx, &config.Config{StoreBackend: config.BackendRedis, RedisAddr: mr.Addr(), RedisKeyPrefix: "t"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, repo)
	repo.Close()

	repo, err = Open(ctx, &config.Config{StoreBackend: config.BackendSQL, DBType: "sqlite", DBDatabase: ":memory:", Env: "prod"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, repo)
	repo.Close()

	_, err = Open(ctx, &config.Config{StoreBackend: "firestore"}, nil)
	assert.EqualError(t, err, "unsupported store backend: firestore")
}
