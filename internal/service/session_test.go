package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/config"
	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/storage"
	"github.com/pribylovaa/go-typing-arena/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testCfg() config.GameConfig {
	return config.GameConfig{
		TokenTTL:                30 * time.Second,
		MinPlayDuration:         2 * time.Second,
		MaxLPS:                  60,
		MsPerLetterTolerance:    5,
		MaxScore:                20,
		Mode30Multiplier:        1.22,
		Mode15TimeMin:           1.5,
		Mode15TimeMax:           120,
		Mode30TimeMin:           3,
		Mode30TimeMax:           300,
		DefaultLeaderboardLimit: 50,
		MaxLeaderboardLimit:     100,
		LeaderboardCacheTTL:     5 * time.Second,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func TestStartRun_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	var saved *models.RunSession
	st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.RunSession) error {
			saved = s
			return nil
		})

	grant, err := svc.StartRun(context.Background(), "speedy_fox", 15, RunMeta{IP: "192.0.2.1", UserAgent: "ua"})
	require.NoError(t, err)
	require.NotNil(t, grant)
	require.NotEqual(t, uuid.Nil, grant.RunID)
	require.NotEmpty(t, grant.Token)

	require.NotNil(t, saved)
	require.Equal(t, grant.RunID, saved.ID)
	require.Equal(t, "speedy_fox", saved.PlayerName)
	require.Equal(t, 15, saved.GameMode)
	require.Equal(t, "192.0.2.1", saved.IP)

	// В БД уходит только хэш секрета, сырой токен — нет.
	require.NotEqual(t, grant.Token, saved.TokenHash)
	require.Equal(t, hashRunToken(grant.Token), saved.TokenHash)

	require.Equal(t, saved.IssuedAt.Add(svc.cfg.TokenTTL), saved.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(svc.cfg.TokenTTL), grant.ExpiresAt, 2*time.Second)
}

func TestStartRun_InvalidName(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	cases := []struct {
		name  string
		value string
	}{
		{"too_short", "a"},
		{"too_long", strings.Repeat("x", 25)},
		{"forbidden_chars", "na<me>"},
		{"only_spaces", "     "},
		{"profanity", "fuck you"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.StartRun(context.Background(), tc.value, 15, RunMeta{})
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestStartRun_TrimsOuterSpaces(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.RunSession) error {
			require.Equal(t, "ab cd", s.PlayerName)
			return nil
		})

	_, err := svc.StartRun(context.Background(), "  ab cd  ", 15, RunMeta{})
	require.NoError(t, err)
}

func TestStartRun_UnsupportedMode(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	for _, mode := range []int{0, -1, 10, 45} {
		_, err := svc.StartRun(context.Background(), "speedy_fox", mode, RunMeta{})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrUnsupportedMode)
	}
}

func TestStartRun_CollisionRetries(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Две коллизии подряд, третья попытка успешна.
	gomock.InOrder(
		st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	grant, err := svc.StartRun(context.Background(), "speedy_fox", 30, RunMeta{})
	require.NoError(t, err)
	require.NotNil(t, grant)
}

func TestStartRun_CollisionExhausted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists).Times(5)

	_, err := svc.StartRun(context.Background(), "speedy_fox", 15, RunMeta{})
	require.Error(t, err)
}

func TestStartRun_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveRunSession(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	_, err := svc.StartRun(context.Background(), "speedy_fox", 15, RunMeta{})
	require.Error(t, err)
}

func TestGenerateRunToken_HashMatchesPlain(t *testing.T) {
	t.Parallel()

	plain, hash, err := generateRunToken()
	require.NoError(t, err)
	require.NotEmpty(t, plain)
	require.Equal(t, hashRunToken(plain), hash)

	// Секреты не повторяются.
	plain2, _, err := generateRunToken()
	require.NoError(t, err)
	require.NotEqual(t, plain, plain2)
}

func TestValidatePlayerName(t *testing.T) {
	t.Parallel()

	got, err := validatePlayerName("Neo_42")
	require.NoError(t, err)
	require.Equal(t, "Neo_42", got)

	got, err = validatePlayerName("Анна-Мария")
	require.NoError(t, err)
	require.Equal(t, "Анна-Мария", got)

	_, err = validatePlayerName("bad;name")
	require.ErrorIs(t, err, ErrInvalidName)
}
