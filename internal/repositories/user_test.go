package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sh-lee/mygallery/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'ROLE_USER',
		locked BOOLEAN NOT NULL DEFAULT FALSE,
		login_type VARCHAR(10) NOT NULL DEFAULT 'local',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice", "hashed-password", "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.Locked)
	assert.Equal(t, models.LoginTypeLocal, user.LoginType)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "alice", "hash1", "alice@example.com")
	assert.NoError(t, err)

	// Unique constraint on email
	_, err = repo.Save(ctx, "alice2", "hash2", "alice@example.com")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "charlie", "secret", "charlie@example.com")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, created.UserID, user.UserID)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "dave", "secret", "dave@example.com")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, created.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
