//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"group-booking-arbiter/cmd/bootstrap"
	"group-booking-arbiter/cmd/bootstrap/components"
	"group-booking-arbiter/internal/infra/db"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "arbiter"
	pgPassword = "arbiter"
	pgPort     = "5432/tcp"
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
)

type endpoint struct {
	Host string
	Port nat.Port
}

// environment is one isolated database and one in-process Redis per suite, sharing a single
// Postgres container across the test binary.
type environment struct {
	pool   *pgxpool.Pool
	redis  *miniredis.Miniredis
	router *gin.Engine
	cfg    config.Config
}

func setupEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)
	pg := postgresEndpoint(t)

	pool, dbCfg := createDatabase(t, pg)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router, cfg := startApp(t, pool, client, dbCfg)
	slog.Info("e2e environment ready", "postgres", pg.Host+":"+pg.Port.Port(), "database", dbCfg.DBName, "redis", mr.Addr())

	return environment{pool: pool, redis: mr, router: router, cfg: cfg}
}

func postgresEndpoint(t *testing.T) endpoint {
	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway test data
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(endpoint{Host: host, Port: port})
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "group-booking-arbiter-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "start postgres container")
		postgresContainer = c
	})

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Host, pg.Port.Port())
}

func createDatabase(t *testing.T, pg endpoint) (*pgxpool.Pool, config.DBConfig) {
	name := "arbiter_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE serialises on the template; parallel suites may need a few tries.
	for attempt := 0; attempt < 5; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("create database failed, retrying", "database", name, "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database failed", "database", name, "error", err.Error())
		}
	})

	dbCfg := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	pool, _, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(ctx, pool), "apply migrations")
	return pool, dbCfg
}

// applyMigrations looks for the migration files from the repo root upwards, since go test runs
// in the package directory.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		var sql []byte
		var err error
		for _, dir := range []string{".", "..", filepath.Join("..", ".."), filepath.Join("..", "..", "..")} {
			if sql, err = os.ReadFile(filepath.Join(dir, file)); err == nil {
				break
			}
		}
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("execute migration %s: %w", file, err)
		}
	}
	return nil
}

// startApp wires the production modules around the test pool and Redis. Kafka brokers stay
// unset, so events go to the no-op publisher, and the expiry worker is left out.
func startApp(t *testing.T, pool *pgxpool.Pool, client redis.UniversalClient, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() redis.UniversalClient { return client },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbCfg
				return c
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.KafkaModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app failed", "error", err.Error())
		}
	})
	return router, cfg
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := setupEnvironment(s.T())
	s.DB = env.pool
	s.Redis = env.redis
	s.Router = env.router
	s.Config = env.cfg
}

// SetupSubTest empties every table and drops all ledger and cache keys.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	s.Redis.FlushAll()
}
