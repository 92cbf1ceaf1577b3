package service

import (
	"context"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Предикаты доступа. Опубликованные вопросы читаемы всеми; черновики видят
// соавторы, участники проектов вопроса и заместители держателей ролей.
// Решения возвращаются вызывающему слою — сами операции сервиса прав
// не проверяют.

// CanBeReadBy — доступен ли вопрос пользователю на чтение.
func (s *Service) CanBeReadBy(ctx context.Context, q *models.Question, user models.User) (bool, error) {
	const op = "service/access/CanBeReadBy"

	if q.IsPublished() {
		return true, nil
	}

	if user.Anonymous {
		return false, nil
	}

	ok, err := s.IsCollaborator(ctx, q.ID, user.ID)
	if err != nil || ok {
		return ok, err
	}

	ok, err = s.isProjectMember(ctx, op, q.ID, user.ID)
	if err != nil || ok {
		return ok, err
	}

	return s.HasRolePermissionAsDeputy(ctx, q.ID, user.ID, models.RoleAny)
}

// CanBeCreatedBy — создавать вопросы может любой не-аноним.
func (s *Service) CanBeCreatedBy(user models.User) bool {
	return !user.Anonymous
}

// CanBeUpdatedBy — правка доступна для черновика участникам проектов вопроса
// и держателям ролей (лично или как заместителям).
func (s *Service) CanBeUpdatedBy(ctx context.Context, q *models.Question, user models.User) (bool, error) {
	const op = "service/access/CanBeUpdatedBy"

	if q.IsPublished() || user.Anonymous {
		return false, nil
	}

	ok, err := s.isProjectMember(ctx, op, q.ID, user.ID)
	if err != nil || ok {
		return ok, err
	}

	return s.HasRolePermission(ctx, q.ID, user, models.RoleAny)
}

// CanBeDestroyedBy — удаление подчиняется тем же правилам, что и правка.
func (s *Service) CanBeDestroyedBy(ctx context.Context, q *models.Question, user models.User) (bool, error) {
	return s.CanBeUpdatedBy(ctx, q, user)
}

// CanBePublishedBy — публиковать может держатель любой роли на вопросе
// (лично или как заместитель).
func (s *Service) CanBePublishedBy(ctx context.Context, q *models.Question, user models.User) (bool, error) {
	if q.IsPublished() || user.Anonymous {
		return false, nil
	}

	return s.HasRolePermission(ctx, q.ID, user, models.RoleAny)
}

// CanBeNewVersionedBy — новую версию снимают только с последней опубликованной
// версии номера; право — у держателей ролей.
func (s *Service) CanBeNewVersionedBy(ctx context.Context, q *models.Question, user models.User) (bool, error) {
	if !q.IsPublished() || user.Anonymous {
		return false, nil
	}

	latest, err := s.IsLatest(ctx, q)
	if err != nil || !latest {
		return false, err
	}

	return s.HasRolePermission(ctx, q.ID, user, models.RoleAny)
}

// CanBeDerivedBy — производную с опубликованного вопроса может снять любой
// не-аноним; ролей на источнике не требуется.
func (s *Service) CanBeDerivedBy(q *models.Question, user models.User) bool {
	return q.IsPublished() && !user.Anonymous
}

func (s *Service) isProjectMember(ctx context.Context, op string, questionID, userID int64) (bool, error) {
	ok, err := s.storage.IsProjectMember(ctx, questionID, userID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on IsProjectMember", "err", err)
		return false, ErrInternal
	}

	return ok, nil
}
