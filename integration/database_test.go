//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDesignlensWithMySQL tests the designlens CLI with a MySQL corpus backend.
func TestDesignlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "designlens",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/designlens?parseTime=true", host, port.Port())
	runCorpusWorkflow(t, "mysql", connStr)
}

// TestDesignlensWithPostgres tests the designlens CLI with a PostgreSQL corpus backend.
func TestDesignlensWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runCorpusWorkflow(t, "postgresql", connStr)
}

// runCorpusWorkflow exercises the full corpus lifecycle against a live backend:
// migrate, add a validated entry, check status, score against the corpus, clear.
func runCorpusWorkflow(t *testing.T, backend, connStr string) {
	t.Helper()

	// Set environment variables
	_ = os.Setenv("DESIGNLENS_CORPUS_BACKEND", backend)
	_ = os.Setenv("DESIGNLENS_CORPUS_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("DESIGNLENS_CORPUS_BACKEND") }()
	defer func() { _ = os.Unsetenv("DESIGNLENS_CORPUS_DB_CONNECT") }()

	screenshot := filepath.Join(t.TempDir(), "screenshot.png")
	writeTestScreenshot(t, screenshot)

	// Run designlens corpus migrate
	err := runDesignlensCommand(t, "corpus", "migrate")
	require.NoError(t, err)

	// Run designlens corpus add
	err = runDesignlensCommand(t, "corpus", "add", screenshot, "82", "--label", "integration fixture")
	require.NoError(t, err)

	// Run designlens corpus status
	err = runDesignlensCommand(t, "corpus", "status")
	require.NoError(t, err)

	// Run designlens score against the populated corpus
	err = runDesignlensCommand(t, "score", screenshot, "--categories", "landing-page", "--explain")
	require.NoError(t, err)

	// Run designlens corpus clear
	err = runDesignlensCommand(t, "corpus", "clear")
	require.NoError(t, err)
}
