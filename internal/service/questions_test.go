package service

// Тесты сервисного слоя question-service (internal/service).
//
//  Проверяем:
//  - разрешение внешних идентификаторов (d{id} / q{number} / q{number}v{version})
//    и отказ fail-closed на кривой форме до обращения к хранилищу;
//  - маппинг ошибок storage -> service (NotFound / Published / Conflict / Internal);
//  - запрет правки и удаления опубликованного вопроса;
//  - требование удержания блокировки на пути правки.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейса хранилища:
//   mockgen -destination=./mocks/storage.go -package=mocks github.com/pribylovaa/go-question-bank/internal/storage Storage
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-question-bank/internal/config"
	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/mocks"
)

// newServiceWithMocks — поднимает сервис с моками стораджа и типовой
// конфигурацией (блокировки 20m, лимиты 50/500).
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	cfg := config.Config{
		Lock:   config.LockConfig{Timeout: 20 * time.Minute},
		Limits: config.LimitsConfig{Default: 50, Max: 500},
	}
	s := New(ms, cfg, nil)
	return s, ms, ctrl
}

// withNow — фиксирует время сервиса на время теста.
func withNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func ptr[T any](v T) *T { return &v }

// draftQuestion — незаблокированный черновик; номер уже назначен при создании.
func draftQuestion(id int64) *models.Question {
	created := time.Now().UTC().Add(-time.Hour)
	return &models.Question{
		ID:        id,
		Number:    20,
		Kind:      models.KindSimple,
		Content:   "What is the airspeed velocity of an unladen swallow?",
		LockedBy:  models.UnlockedSentinel,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// publishedQuestion — опубликованный вопрос (number, version).
func publishedQuestion(id, number int64, version int32) *models.Question {
	q := draftQuestion(id)
	q.Number = number
	q.Version = ptr(version)
	q.LicenseID = ptr(uuid.New())
	q.PublisherID = ptr(int64(1))
	q.PublishedAt = ptr(time.Now().UTC().Add(-30 * time.Minute))
	return q
}

func TestService_QuestionByID_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.QuestionByID(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.QuestionByID(context.Background(), -5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_QuestionByID_StorageErrors(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().QuestionByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)
	_, err := s.QuestionByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().QuestionByID(gomock.Any(), int64(7)).Return(nil, errors.New("boom"))
	_, err = s.QuestionByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrInternal)
}

// Кривая форма отвергается до какого-либо запроса к хранилищу:
// мок без ожиданий упадёт на любом вызове.
func TestService_QuestionByExternalID_Untrusted(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	for _, param := range []string{
		"", "q", "d", "42", "q42x", "q42v", "d42v1", "q42v1 ", " q42v1",
		"qv1", "d-1", "q42v1extra", "Q42V1",
	} {
		_, err := s.QuestionByExternalID(context.Background(), param)
		require.ErrorIs(t, err, ErrUntrustedReference, "param=%q", param)
	}
}

func TestService_QuestionByExternalID_Draft(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := draftQuestion(42)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(42)).Return(want, nil)

	got, err := s.QuestionByExternalID(context.Background(), "d42")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// "q{number}" без версии — последняя опубликованная версия номера.
func TestService_QuestionByExternalID_LatestPublished(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := publishedQuestion(10, 3, 2)
	ms.EXPECT().LatestPublished(gomock.Any(), int64(3)).Return(want, nil)

	got, err := s.QuestionByExternalID(context.Background(), "q3")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_QuestionByExternalID_ExactVersion(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := publishedQuestion(10, 3, 2)
	ms.EXPECT().QuestionByNumberAndVersion(gomock.Any(), int64(3), int32(2)).Return(want, nil)

	got, err := s.QuestionByExternalID(context.Background(), "q3v2")
	require.NoError(t, err)
	require.Equal(t, want, got)

	ms.EXPECT().QuestionByNumberAndVersion(gomock.Any(), int64(3), int32(9)).Return(nil, storage.ErrNotFound)
	_, err = s.QuestionByExternalID(context.Background(), "q3v9")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateContent_PublishedImmutable(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := publishedQuestion(10, 3, 1)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	_, err := s.UpdateContent(context.Background(), UpdateContentInput{
		QuestionID: 10,
		User:       models.User{ID: 1},
		Content:    "new content",
	})
	require.ErrorIs(t, err, ErrPublishedImmutable)
}

// Правка без удержания блокировки отвергается (включая тихое истечение).
func TestService_UpdateContent_RequiresLock(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := draftQuestion(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	_, err := s.UpdateContent(context.Background(), UpdateContentInput{
		QuestionID: 10,
		User:       models.User{ID: 1},
		Content:    "new content",
	})
	require.ErrorIs(t, err, ErrLockNotHeld)
}

func TestService_UpdateContent_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.LockedBy = 1
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	updated := draftQuestion(10)
	updated.Content = "fresh"
	ms.EXPECT().
		UpdateDraftContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params storage.UpdateContentParams) (*models.Question, error) {
			require.Equal(t, int64(10), params.QuestionID)
			require.Equal(t, "fresh", params.Content)
			// content_html — свежий рендер, не пользовательский ввод.
			require.NotEmpty(t, params.ContentHTML)
			require.Nil(t, params.ChangesSolution)
			return updated, nil
		})

	got, err := s.UpdateContent(context.Background(), UpdateContentInput{
		QuestionID: 10,
		User:       models.User{ID: 1},
		Content:    "fresh",
	})
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestService_Destroy_PublishedImmutable(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := publishedQuestion(10, 3, 1)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)

	err := s.Destroy(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrPublishedImmutable)
}

// Удаление не требует держать блокировку — достаточно, чтобы её не держал другой.
func TestService_Destroy_OK_Unlocked(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := draftQuestion(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().DestroyDraft(gomock.Any(), int64(10)).Return(nil)

	require.NoError(t, s.Destroy(context.Background(), 10, models.User{ID: 1}))
}

func TestService_Destroy_LockedByOther(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := draftQuestion(10)
	q.Number = 3
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2, FullName: "Bob Dobbs"}, nil)

	err := s.Destroy(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockConflict)
	require.Contains(t, err.Error(), "Bob Dobbs")
}
