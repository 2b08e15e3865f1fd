//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"

	"startupsim/adapters/postgres"
	"startupsim/domain/core"
	"startupsim/internal/errors"
	"startupsim/internal/migration"
	"startupsim/internal/simulation"
	"startupsim/models"
)

// setupTestDB starts a PostgreSQL container and runs the schema migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "startupsim_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=startupsim_test sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 30; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to connect to database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.NewRunner().Run(ctx, db))
	// migrations are idempotent
	require.NoError(t, migration.NewRunner().Run(ctx, db))

	return db
}

func TestReportRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewReportRepository(db)
	ctx := context.Background()

	report, err := simulation.RunFullSimulation(ctx, models.BusinessModel{
		Hypotheses: []string{"A monthly subscription price of 9,900 is acceptable"},
	}, simulation.Options{Seed: 21})
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, report))

	got, err := repo.Get(ctx, report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report.SimulationID, got.SimulationID)
	assert.Equal(t, report.Personas, got.Personas)
	assert.Equal(t, report.ValidationResults, got.ValidationResults)
	assert.Equal(t, report.Summary.TotalInterviews, got.Summary.TotalInterviews)

	items, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, report.RunID, items[0].RunID)
	assert.Equal(t, 20, items[0].TotalPersonas)
}

func TestReportRepository_SaveAgainRefreshesColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewReportRepository(db)
	ctx := context.Background()

	report, err := simulation.RunFullSimulation(ctx, models.BusinessModel{
		Hypotheses: []string{"the price is fair"},
	}, simulation.Options{Seed: 8, PersonaCount: 5})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, report))

	report.SimulationID = core.SimulationID("sim_20240101000000")
	report.Summary.TotalPersonas = 9
	report.Summary.ValidatedHypotheses = 3
	report.Summary.InvalidatedHypotheses = 2
	require.NoError(t, repo.Save(ctx, report))

	items, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, report.SimulationID, items[0].SimulationID)
	assert.Equal(t, 9, items[0].TotalPersonas)
	assert.Equal(t, 3, items[0].ValidatedHypotheses)
	assert.Equal(t, 2, items[0].InvalidatedHypotheses)

	got, err := repo.Get(ctx, report.RunID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Summary.TotalPersonas)
}

func TestReportRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewReportRepository(db)

	_, err := repo.Get(context.Background(), core.NewRunID())
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
