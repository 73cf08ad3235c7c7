package postgrestest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goto/workforce/internal/store"
	"github.com/goto/workforce/internal/store/postgres"
	"github.com/goto/workforce/pkg/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	pgUser   = "test_user"
	pgPass   = "test_pass"
	pgDBName = "test_db"
)

// NewTestStore starts a disposable postgres container and returns a migrated store on it
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPass,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	hostAndPort := strings.Split(resource.GetHostPort("5432/tcp"), ":")
	cfg := &store.Config{
		Host:     hostAndPort[0],
		User:     pgUser,
		Password: pgPass,
		Name:     pgDBName,
		Port:     hostAndPort[1],
		SslMode:  "disable",
		LogLevel: "silent",
	}

	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	pool.MaxWait = 60 * time.Second

	var st *postgres.Store
	if err := pool.Retry(func() error {
		st, err = postgres.NewStore(cfg)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	version, err := st.Migrate()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not migrate: %w", err)
	}
	logger.Info(ctx, "test database ready", "host", cfg.Host, "port", cfg.Port, "schema_version", version)

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}
