package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres (run_sessions.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    SaveRunSession: insert и ErrAlreadyExists при коллизии token_hash;
//    ConsumeRunSession: одноразовое погашение, классификацию отказов
//    (ErrAlreadyUsed / ErrExpired / ErrNotFound) и конкурентное погашение
//    «ровно один победитель»;
//    DeleteExpiredRunSessions: удаление просроченных, живые не затронуты.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_run_sessions.up.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, readMigration(t, "2_init_game_results.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// newSession — живая сессия с окном действия 30 секунд от текущего момента.
func newSession(name string, mode int) *models.RunSession {
	now := time.Now().UTC()
	return &models.RunSession{
		ID:         uuid.New(),
		TokenHash:  "hash-" + uuid.NewString(),
		PlayerName: name,
		GameMode:   mode,
		IssuedAt:   now,
		ExpiresAt:  now.Add(30 * time.Second),
		IP:         "192.0.2.1",
		UserAgent:  "go-test",
	}
}

func TestIntegration_SaveRunSession_And_ByID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession("speedy_fox", 15)

	require.NoError(t, st.SaveRunSession(ctx, s))

	got, err := st.RunSessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.ID, got.ID)
	require.Equal(t, s.TokenHash, got.TokenHash)
	require.Equal(t, s.PlayerName, got.PlayerName)
	require.Equal(t, s.GameMode, got.GameMode)
	require.Equal(t, s.IP, got.IP)
	require.Equal(t, s.UserAgent, got.UserAgent)
	require.Nil(t, got.UsedAt)
	require.WithinDuration(t, s.IssuedAt, got.IssuedAt, time.Millisecond)
	require.WithinDuration(t, s.ExpiresAt, got.ExpiresAt, time.Millisecond)
}

func TestIntegration_SaveRunSession_DuplicateHash_AlreadyExists(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s1 := newSession("speedy_fox", 15)
	require.NoError(t, st.SaveRunSession(ctx, s1))

	s2 := newSession("speedy_fox", 15)
	s2.TokenHash = s1.TokenHash

	err := st.SaveRunSession(ctx, s2)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_ConsumeRunSession_OK_ThenAlreadyUsed(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession("speedy_fox", 15)
	require.NoError(t, st.SaveRunSession(ctx, s))

	now := time.Now().UTC()
	got, err := st.ConsumeRunSession(ctx, s.ID, s.TokenHash, now)
	require.NoError(t, err)
	require.Equal(t, s.PlayerName, got.PlayerName)
	require.Equal(t, s.GameMode, got.GameMode)
	require.WithinDuration(t, s.IssuedAt, got.IssuedAt, time.Millisecond)

	// Повторное погашение того же токена — терминальный отказ.
	_, err = st.ConsumeRunSession(ctx, s.ID, s.TokenHash, time.Now().UTC())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyUsed)

	// used_at зафиксирован в строке.
	row, err := st.RunSessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, row.UsedAt)
}

func TestIntegration_ConsumeRunSession_Expired(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession("speedy_fox", 15)
	s.IssuedAt = time.Now().UTC().Add(-time.Minute)
	s.ExpiresAt = time.Now().UTC().Add(-30 * time.Second)
	require.NoError(t, st.SaveRunSession(ctx, s))

	_, err := st.ConsumeRunSession(ctx, s.ID, s.TokenHash, time.Now().UTC())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrExpired)

	// Просроченная сессия не считается погашенной.
	row, err := st.RunSessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, row.UsedAt)
}

func TestIntegration_ConsumeRunSession_WrongHash_IsNotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession("speedy_fox", 15)
	require.NoError(t, st.SaveRunSession(ctx, s))

	// Несовпадение хэша неотличимо от отсутствия сессии.
	_, err := st.ConsumeRunSession(ctx, s.ID, "wrong-hash", time.Now().UTC())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// И сессия при этом остаётся живой.
	_, err = st.ConsumeRunSession(ctx, s.ID, s.TokenHash, time.Now().UTC())
	require.NoError(t, err)
}

func TestIntegration_ConsumeRunSession_UnknownID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ConsumeRunSession(context.Background(), uuid.New(), "whatever", time.Now().UTC())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Регрессия на гонку двойного погашения: из N конкурентных попыток
// с одним и тем же токеном выигрывает ровно одна.
func TestIntegration_ConsumeRunSession_Concurrent_ExactlyOneWins(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession("speedy_fox", 15)
	require.NoError(t, st.SaveRunSession(ctx, s))

	const workers = 8

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		used  int
		other []error
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := st.ConsumeRunSession(ctx, s.ID, s.TokenHash, time.Now().UTC())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, storage.ErrAlreadyUsed):
				used++
			default:
				other = append(other, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Equal(t, 1, wins, "exactly one concurrent redemption must win")
	require.Equal(t, workers-1, used, "losers must see ErrAlreadyUsed")
	require.Empty(t, other)
}

func TestIntegration_DeleteExpiredRunSessions(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	expired := newSession("old_player", 15)
	expired.IssuedAt = now.Add(-time.Hour)
	expired.ExpiresAt = now.Add(-time.Minute)
	require.NoError(t, st.SaveRunSession(ctx, expired))

	alive := newSession("new_player", 15)
	require.NoError(t, st.SaveRunSession(ctx, alive))

	require.NoError(t, st.DeleteExpiredRunSessions(ctx, now))

	_, err := st.RunSessionByID(ctx, expired.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	got, err := st.RunSessionByID(ctx, alive.ID)
	require.NoError(t, err)
	require.Equal(t, alive.ID, got.ID)
}
