package service

// Тесты рекомендательной блокировки черновиков (internal/service/lock.go).
//
//  Проверяем машину состояний:
//  - захват свободного черновика, идемпотентный повторный захват (продление);
//  - конфликт с другим непросроченным держателем (имя держателя и минуты
//    в сообщении);
//  - ленивое истечение: просроченная блокировка эквивалентна свободной;
//  - освобождение держателем, LockNotHeld на свободном (в т.ч. истёкшем),
//    конфликт при чужой блокировке;
//  - режим «блокировки отключены» (timeout <= 0) — все операции тривиально
//    успешны.

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-question-bank/internal/config"
	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/mocks"
)

func TestService_GetLock_Free_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().SetLock(gomock.Any(), int64(10), int64(1), current).Return(nil)

	require.NoError(t, s.GetLock(context.Background(), 10, models.User{ID: 1}))
}

// Повторный захват своим держателем идемпотентен и продлевает блокировку.
func TestService_GetLock_Reacquire_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 1
	q.LockedAt = ptr(current.Add(-10 * time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().SetLock(gomock.Any(), int64(10), int64(1), current).Return(nil)

	require.NoError(t, s.GetLock(context.Background(), 10, models.User{ID: 1}))
}

func TestService_GetLock_Conflict(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.Number = 3
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-5 * time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2, FullName: "Bob Dobbs"}, nil)

	err := s.GetLock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockConflict)

	var conflict *LockConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, int64(2), conflict.HolderID)
	require.Equal(t, "Bob Dobbs", conflict.HolderName)
	// 20m таймаут - 5m прошло = 15m, округление вверх.
	require.Equal(t, 15, conflict.MinutesLeft)
	// В сообщении — настоящий номер черновика, не нулевая заглушка.
	require.Contains(t, err.Error(), "(q. 3)")
}

// Блокировка имеет смысл только у черновика: опубликованный вопрос
// отвергается без мутаций хранилища.
func TestService_GetLock_Published(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := publishedQuestion(10, 3, 1)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	err := s.GetLock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrPublishedImmutable)
}

// Если держатель не находится в хранилище, подпись — "user #<id>".
func TestService_GetLock_Conflict_HolderNameFallback(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(nil, storage.ErrNotFound)

	err := s.GetLock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockConflict)
	require.Contains(t, err.Error(), "user #2")
}

// Просроченная блокировка эквивалентна свободной: захват проходит.
func TestService_GetLock_ExpiredLock_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-21 * time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().SetLock(gomock.Any(), int64(10), int64(1), current).Return(nil)

	require.NoError(t, s.GetLock(context.Background(), 10, models.User{ID: 1}))
}

func TestService_CheckAndUnlock_Holder_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 1
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().ClearLock(gomock.Any(), int64(10)).Return(nil)

	require.NoError(t, s.CheckAndUnlock(context.Background(), 10, models.User{ID: 1}))
}

// Свободный (включая тихо истёкший) черновик — ошибка «бездействия»,
// отличная от конфликтной.
func TestService_CheckAndUnlock_NotHeld(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	err := s.CheckAndUnlock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockNotHeld)
	require.NotErrorIs(t, err, ErrLockConflict)

	// Истёкшая блокировка — тот же исход.
	expired := draftQuestion(10)
	expired.LockedBy = 1
	expired.LockedAt = ptr(current.Add(-time.Hour))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(expired, nil)

	err = s.CheckAndUnlock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockNotHeld)
}

func TestService_CheckAndUnlock_HeldByOther(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2, FullName: "Bob"}, nil)

	err := s.CheckAndUnlock(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockConflict)
}

// timeout <= 0 — блокировки отключены: обе операции успешны без обращений
// к хранилищу.
func TestService_Lock_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := mocks.NewMockStorage(ctrl)
	cfg := config.Config{
		Lock:   config.LockConfig{Timeout: 0},
		Limits: config.LimitsConfig{Default: 50, Max: 500},
	}
	s := New(ms, cfg, nil)

	require.NoError(t, s.GetLock(context.Background(), 10, models.User{ID: 1}))
	require.NoError(t, s.CheckAndUnlock(context.Background(), 10, models.User{ID: 1}))
}

func TestService_IsLocked_HasLock(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	require.False(t, s.IsLocked(q))
	require.False(t, s.HasLock(q, 1))

	q.LockedBy = 1
	q.LockedAt = ptr(current.Add(-time.Minute))
	require.True(t, s.IsLocked(q))
	require.True(t, s.HasLock(q, 1))
	require.False(t, s.HasLock(q, 2))
}
