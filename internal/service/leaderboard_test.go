package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pribylovaa/go-typing-arena/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.GameResult{
		{PlayerName: "first", Score: 12.5},
		{PlayerName: "second", Score: 9.1},
	}

	st.EXPECT().TopResults(gomock.Any(), 15, 10).Return(want, nil)

	got, err := svc.Leaderboard(context.Background(), 15, 10)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLeaderboard_UnsupportedMode(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.Leaderboard(context.Background(), 42, 10)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestLeaderboard_LimitDefaultsAndClamps(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// limit <= 0 — лимит по умолчанию.
	st.EXPECT().TopResults(gomock.Any(), 15, 50).Return(nil, nil)
	_, err := svc.Leaderboard(context.Background(), 15, 0)
	require.NoError(t, err)

	st.EXPECT().TopResults(gomock.Any(), 15, 50).Return(nil, nil)
	_, err = svc.Leaderboard(context.Background(), 15, -3)
	require.NoError(t, err)

	// Сверх максимума — клампится к максимуму.
	st.EXPECT().TopResults(gomock.Any(), 15, 100).Return(nil, nil)
	_, err = svc.Leaderboard(context.Background(), 15, 1000)
	require.NoError(t, err)
}

func TestLeaderboard_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().TopResults(gomock.Any(), 30, 50).Return(nil, errors.New("db down"))

	_, err := svc.Leaderboard(context.Background(), 30, 0)
	require.Error(t, err)
}
