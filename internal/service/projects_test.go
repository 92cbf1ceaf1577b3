package service

// Тесты размещения по проектам и подписок (internal/service/projects.go).
//
//  Проверяем:
//  - Projects: отказ анониму, passthrough списка проектов;
//  - AddToProject: кривой UUID, членство в целевом проекте как условие,
//    маппинг ErrNotFound;
//  - Subscribe: отказ анониму, доступность вопроса на чтение как условие.

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

func TestService_Projects(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.Projects(context.Background(), models.AnonymousUser())
	require.ErrorIs(t, err, ErrInvalidArgument)

	want := []models.Project{
		{ID: uuid.New(), OwnerID: 1, Name: "Default Project", Default: true},
		{ID: uuid.New(), OwnerID: 2, Name: "Physics Bank"},
	}
	ms.EXPECT().ProjectsFor(gomock.Any(), int64(1)).Return(want, nil)

	got, err := s.Projects(context.Background(), models.User{ID: 1})
	require.NoError(t, err)
	require.Equal(t, want, got)

	ms.EXPECT().ProjectsFor(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))
	_, err = s.Projects(context.Background(), models.User{ID: 1})
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_AddToProject_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.AddToProject(context.Background(), 10, "not-a-uuid", models.User{ID: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = s.AddToProject(context.Background(), 10, uuid.NewString(), models.AnonymousUser())
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = s.AddToProject(context.Background(), 0, uuid.NewString(), models.User{ID: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Привязывать вопрос к проекту может только член целевого проекта.
func TestService_AddToProject_NotMember(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	target := uuid.New()
	ms.EXPECT().ProjectsFor(gomock.Any(), int64(1)).Return([]models.Project{
		{ID: uuid.New(), OwnerID: 1, Default: true},
	}, nil)

	err := s.AddToProject(context.Background(), 10, target.String(), models.User{ID: 1})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_AddToProject_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	target := uuid.New()
	ms.EXPECT().ProjectsFor(gomock.Any(), int64(1)).Return([]models.Project{
		{ID: target, OwnerID: 2, Name: "Physics Bank"},
	}, nil)
	ms.EXPECT().AddQuestionToProject(gomock.Any(), target, int64(10)).Return(nil)

	require.NoError(t, s.AddToProject(context.Background(), 10, target.String(), models.User{ID: 1}))
}

func TestService_AddToProject_QuestionMissing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	target := uuid.New()
	ms.EXPECT().ProjectsFor(gomock.Any(), int64(1)).Return([]models.Project{
		{ID: target, OwnerID: 1},
	}, nil)
	ms.EXPECT().AddQuestionToProject(gomock.Any(), target, int64(10)).Return(storage.ErrNotFound)

	err := s.AddToProject(context.Background(), 10, target.String(), models.User{ID: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Subscribe_Anonymous(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.Subscribe(context.Background(), 10, models.AnonymousUser())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Черновик, недоступный пользователю на чтение, на подписку не принимается.
func TestService_Subscribe_NotReadable(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := draftQuestion(10)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().CollaboratorsByQuestion(gomock.Any(), int64(10)).Return(nil, nil)
	ms.EXPECT().IsProjectMember(gomock.Any(), int64(10), int64(5)).Return(false, nil)
	ms.EXPECT().Deputizers(gomock.Any(), int64(5)).Return(nil, nil)

	err := s.Subscribe(context.Background(), 10, models.User{ID: 5})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

// Опубликованный вопрос читаем всеми — подписка проходит без проверок ролей.
func TestService_Subscribe_Published_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	q := publishedQuestion(10, 3, 1)
	ms.EXPECT().QuestionByID(gomock.Any(), int64(10)).Return(q, nil)
	ms.EXPECT().SubscribeToThread(gomock.Any(), int64(10), int64(5)).Return(nil)

	require.NoError(t, s.Subscribe(context.Background(), 10, models.User{ID: 5}))
}
