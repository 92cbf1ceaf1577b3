package service

// Тесты публикации (internal/service/publish.go).
//
//  Проверяем:
//  - накопление всех нарушений предпубликационных правил за один проход;
//  - no-op при непустом списке нарушений (мутаций хранилища нет);
//  - happy-path: версия 1 у первой публикации номера, max+1 у новой версии;
//  - видоспецифичную проверку multipart (нет частей — нарушение);
//  - конфликт блокировки, гонку за версию и маппинг ошибок стораджа.

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/mocks"
)

// readyDraft — черновик, проходящий все предпубликационные проверки:
// лицензия есть, роли заполнены, запросов ролей нет.
func readyDraft(id int64) *models.Question {
	q := draftQuestion(id)
	q.LicenseID = ptr(uuid.New())
	return q
}

func expectCleanChecks(ms *mocks.MockStorage, questionID int64) {
	ms.EXPECT().RoleRequestsByQuestion(gomock.Any(), questionID).Return(nil, nil)
	ms.EXPECT().CollaboratorsByQuestion(gomock.Any(), questionID).Return([]models.QuestionCollaborator{
		{QuestionID: questionID, UserID: 1, IsAuthor: true, IsCopyrightHolder: true},
	}, nil)
}

func TestService_RunPrepublishErrorChecks_AccumulatesAll(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// Черновик без лицензии, с запросом ролей и без держателей ролей.
	q := draftQuestion(10)

	ms.EXPECT().RoleRequestsByQuestion(gomock.Any(), int64(10)).Return([]models.RoleRequest{
		{ID: uuid.New(), QuestionID: 10, UserID: 5, Role: models.RoleAuthor},
	}, nil)
	ms.EXPECT().CollaboratorsByQuestion(gomock.Any(), int64(10)).Return([]models.QuestionCollaborator{
		{QuestionID: 10, UserID: 1, IsListed: true},
	}, nil)
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound)

	errs, err := s.RunPrepublishErrorChecks(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, errs, 3)
	require.Contains(t, errs, msgPendingRoleRequests)
	require.Contains(t, errs, msgRolesNotFilled)
	require.Contains(t, errs, msgNoLicense)
}

func TestService_RunPrepublishErrorChecks_AlreadyPublishedAndSuperseded(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := publishedQuestion(10, 3, 1)

	latest := publishedQuestion(11, 3, 2)
	latest.UpdatedAt = q.CreatedAt.Add(time.Hour)

	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(3)).Return(latest, nil)

	errs, err := s.RunPrepublishErrorChecks(context.Background(), q)
	require.NoError(t, err)
	require.Contains(t, errs, msgAlreadyPublished)
	require.Contains(t, errs, msgSuperseded)
}

func TestService_RunPrepublishErrorChecks_MultipartNeedsParts(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := readyDraft(10)
	q.Kind = models.KindMultipart

	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound)
	ms.EXPECT().QuestionParts(gomock.Any(), int64(10)).Return(nil, nil)

	errs, err := s.RunPrepublishErrorChecks(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "at least one part")
}

// Нарушения — no-op: (nil, нарушения, nil), мутаций хранилища нет.
func TestService_Publish_RejectedByChecks(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := draftQuestion(10) // без лицензии
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound)

	published, errs, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.NoError(t, err)
	require.Nil(t, published)
	require.Equal(t, PrepublishErrors{msgNoLicense}, errs)
}

// Первая публикация номера: опубликованных версий ещё нет, версия — 1.
func TestService_Publish_FirstVersion_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := readyDraft(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound).Times(2)

	want := publishedQuestion(10, 20, 1)
	ms.EXPECT().
		PublishQuestion(gomock.Any(), storage.PublishParams{QuestionID: 10, PublisherID: 1, Version: 1}).
		Return(want, nil)

	published, errs, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, want, published)
}

// Публикация новой версии: номер унаследован, версия = max(version)+1.
func TestService_Publish_NextVersion_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := readyDraft(11)
	q.Number = 3
	ms.EXPECT().QuestionByID(gomock.Any(), int64(11)).Return(q, nil)
	expectCleanChecks(ms, int64(11))

	latest := publishedQuestion(10, 3, 2)
	// Superseded-проверка: последняя версия существовала до создания черновика.
	latest.UpdatedAt = q.CreatedAt.Add(-time.Hour)
	// Два вызова LatestPublished: проверка superseded и вычисление версии.
	ms.EXPECT().LatestPublished(gomock.Any(), int64(3)).Return(latest, nil).Times(2)

	want := publishedQuestion(11, 3, 3)
	ms.EXPECT().
		PublishQuestion(gomock.Any(), storage.PublishParams{QuestionID: 11, PublisherID: 1, Version: 3}).
		Return(want, nil)

	published, errs, err := s.Publish(context.Background(), 11, models.User{ID: 1})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, want, published)
}

func TestService_Publish_LockedByOther(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := readyDraft(10)
	q.LockedBy = 2
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2, FullName: "Bob"}, nil)

	_, _, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrLockConflict)
}

// Держатель блокировки публикует свободно; блокировка отбрасывается хранилищем.
func TestService_Publish_HeldBySelf_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := time.Now().UTC()
	withNow(t, current)

	q := readyDraft(10)
	q.LockedBy = 1
	q.LockedAt = ptr(current.Add(-time.Minute))
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound).Times(2)

	want := publishedQuestion(10, 20, 1)
	ms.EXPECT().PublishQuestion(gomock.Any(), gomock.Any()).Return(want, nil)

	published, errs, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, want, published)
}

// Гонка: хранилище увидело уже опубликованную строку.
func TestService_Publish_StorageRace(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := readyDraft(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound).Times(2)
	ms.EXPECT().PublishQuestion(gomock.Any(), gomock.Any()).Return(nil, storage.ErrPublished)

	_, _, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrPublishedImmutable)
}

// Гонка за пару (number, version): параллельная публикация успела занять
// версию — наружу уходит ретраябельный ErrVersionConflict.
func TestService_Publish_VersionRace(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := readyDraft(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	expectCleanChecks(ms, int64(10))
	ms.EXPECT().LatestPublished(gomock.Any(), int64(20)).Return(nil, storage.ErrNotFound).Times(2)
	ms.EXPECT().PublishQuestion(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)

	_, _, err := s.Publish(context.Background(), 10, models.User{ID: 1})
	require.ErrorIs(t, err, ErrVersionConflict)
	require.NotErrorIs(t, err, ErrInternal)
}
