package main

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/roster"
	"github.com/localnerve/guardroster/internal/server"
	"github.com/localnerve/guardroster/internal/services"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func startServer(t *testing.T) (string, store.Repository) {
	t.Helper()
	cfg := &config.Config{
		StoreBackend: config.BackendMemory,
		Auth:         config.Credential{Username: "admin", Password: "pw", Token: "tok"},
	}
	repo := store.NewMemory()
	auth, err := services.NewAuthService(context.Background(), repo, cfg.Auth, nil)
	require.NoError(t, err)
	app := server.New(server.Deps{Config: cfg, Repo: repo, Auth: auth})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), repo
}

func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--server", serverURL, "--token", "tok"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLogin(t *testing.T) {
	url, _ := startServer(t)

	out, err := run(t, url, "login", "admin", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok\n", out)

	_, err = run(t, url, "login", "admin", "nope")
	assert.ErrorContains(t, err, "auth.invalid_credentials")
}

func TestGuardsAddListDelete(t *testing.T) {
	url, repo := startServer(t)

	out, err := run(t, url, "guards", "add", "--first-name", "דוד", "--last-name", "כהן", "--id-number", "123456789", "--phone", "0501234567")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = run(t, url, "guards", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "דוד כהן")
	assert.Contains(t, out, id)

	_, err = run(t, url, "guards", "add", "--first-name", "a", "--last-name", "b", "--id-number", "12345", "--phone", "0501234567")
	assert.ErrorIs(t, err, roster.ErrIDNumber)

	_, err = run(t, url, "guards", "delete", id)
	require.NoError(t, err)
	guards, err := repo.ListGuards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, guards)
}

func TestGuardsAdd_RosterFull(t *testing.T) {
	url, repo := startServer(t)
	for i := 0; i < roster.MaxGuards; i++ {
		_, err := repo.AddGuard(context.Background(), models.Guard{FirstName: "g", LastName: "x"})
		require.NoError(t, err)
	}

	_, err := run(t, url, "guards", "add", "--first-name", "a", "--last-name", "b", "--id-number", "123456789", "--phone", "0501234567")
	assert.ErrorIs(t, err, roster.ErrRosterFull)
}

func TestListsAndReminders(t *testing.T) {
	url, repo := startServer(t)
	ctx := context.Background()

	david, err := repo.AddGuard(ctx, models.Guard{FirstName: "דוד", LastName: "כהן"})
	require.NoError(t, err)
	dana, err := repo.AddGuard(ctx, models.Guard{FirstName: "דנה", LastName: "לוי"})
	require.NoError(t, err)

	excellent := models.RatingExcellent
	_, err = repo.AddInspection(ctx, models.Inspection{
		GuardID: david.ID, InspectorName: "רונית",
		UniformComplete: excellent, GuardBadgeValid: excellent, PersonalWeapon: excellent, FullMagazine: excellent,
		ValidCommunication: excellent, EntranceGateOperational: excellent, ScanLogComplete: excellent, ProceduresBooklet: excellent,
		EntranceProcedures: excellent, SecurityOfficerKnowledge: models.RatingGood,
	})
	require.NoError(t, err)
	_, err = repo.AddExercise(ctx, models.Exercise{GuardID: dana.ID, InstructorName: "יוסי", ExerciseType: "חדירה", KabtEvaluation: 20})
	require.NoError(t, err)

	out, err := run(t, url, "inspections", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "66.5/56")
	assert.Contains(t, out, "warning")

	out, err = run(t, url, "exercises", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "20/100")
	assert.Contains(t, out, "poor")

	out, err = run(t, url, "reminders")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	// Dana was never inspected so she is due now and listed first
	assert.Contains(t, lines[1], "דנה לוי")
	assert.Contains(t, lines[1], "never")
	assert.Contains(t, lines[2], "דוד כהן")
	assert.Contains(t, lines[2], "30")

	_, err = run(t, url, "reminders", "--kind", "patrols")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	url, repo := startServer(t)
	_, err := repo.AddGuard(context.Background(), models.Guard{FirstName: "דוד", LastName: "כהן"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	out, err := run(t, url, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Guards")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
