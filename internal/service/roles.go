package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Роли соавторов: флаги автора/правообладателя на записях (вопрос, пользователь).
// Вопрос «полностью укомплектован», когда оба флага держатся хотя бы по разу —
// не обязательно одной записью. Заместитель (deputy) проходит проверки прав
// от имени доверителя, но собственных ролей не получает.

// HasRole — установлен ли у какой-либо записи (question, user) флаг роли.
// RoleAny — автор или правообладатель.
func (s *Service) HasRole(ctx context.Context, questionID int64, userID int64, role models.Role) (bool, error) {
	const op = "service/roles/HasRole"

	collabs, err := s.collaborators(ctx, op, questionID)
	if err != nil {
		return false, err
	}

	for i := range collabs {
		if collabs[i].UserID == userID && collabs[i].HasRole(role) {
			return true, nil
		}
	}

	return false, nil
}

// IsCollaborator — существует ли запись соавторства для пары, независимо
// от флагов.
func (s *Service) IsCollaborator(ctx context.Context, questionID int64, userID int64) (bool, error) {
	const op = "service/roles/IsCollaborator"

	collabs, err := s.collaborators(ctx, op, questionID)
	if err != nil {
		return false, err
	}

	for i := range collabs {
		if collabs[i].UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

// HasAllRoles — обе роли (автор и правообладатель) заполнены по совокупности
// записей; возможно, разными соавторами.
func (s *Service) HasAllRoles(ctx context.Context, questionID int64) (bool, error) {
	const op = "service/roles/HasAllRoles"

	collabs, err := s.collaborators(ctx, op, questionID)
	if err != nil {
		return false, err
	}

	var authorFilled, copyrightFilled bool
	for i := range collabs {
		authorFilled = authorFilled || collabs[i].IsAuthor
		copyrightFilled = copyrightFilled || collabs[i].IsCopyrightHolder
	}

	return authorFilled && copyrightFilled, nil
}

// HasRolePermissionAsDeputy — проходит ли пользователь проверку роли как
// заместитель: хотя бы один его доверитель сам держит роль на вопросе.
func (s *Service) HasRolePermissionAsDeputy(ctx context.Context, questionID int64, userID int64, role models.Role) (bool, error) {
	const op = "service/roles/HasRolePermissionAsDeputy"

	deputizers, err := s.storage.Deputizers(ctx, userID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on Deputizers", "err", err)
		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for _, deputizerID := range deputizers {
		ok, err := s.HasRole(ctx, questionID, deputizerID, role)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// HasRolePermission — итоговая проверка прав роли: пользователь не аноним и
// (держит роль сам или проходит как заместитель).
func (s *Service) HasRolePermission(ctx context.Context, questionID int64, user models.User, role models.Role) (bool, error) {
	if user.Anonymous {
		return false, nil
	}

	ok, err := s.HasRole(ctx, questionID, user.ID, role)
	if err != nil || ok {
		return ok, err
	}

	return s.HasRolePermissionAsDeputy(ctx, questionID, user.ID, role)
}

// RolelessCollaborators возвращает записи без ролей автора и правообладателя —
// кандидатов на чистку при публикации.
func (s *Service) RolelessCollaborators(ctx context.Context, questionID int64) ([]models.QuestionCollaborator, error) {
	const op = "service/roles/RolelessCollaborators"

	collabs, err := s.collaborators(ctx, op, questionID)
	if err != nil {
		return nil, err
	}

	var roleless []models.QuestionCollaborator
	for i := range collabs {
		if collabs[i].Roleless() {
			roleless = append(roleless, collabs[i])
		}
	}

	return roleless, nil
}

// CanBeJoinedBy — может ли пользователь попроситься в соавторы
// (ещё не числится в списке).
func (s *Service) CanBeJoinedBy(ctx context.Context, questionID int64, user models.User) (bool, error) {
	ok, err := s.HasRole(ctx, questionID, user.ID, models.RoleListed)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// RemoveRole снимает флаг роли с записи соавторства и, если держателей ролей
// не осталось, автоматически удовлетворяет все ожидающие запросы ролей —
// иначе вопрос осиротеет: одобрять запросы будет некому.
func (s *Service) RemoveRole(ctx context.Context, questionID int64, collaboratorID uuid.UUID, role models.Role) error {
	const op = "service/roles/RemoveRole"

	lg := log.Op(ctx, op).With("question_id", questionID, "collaborator_id", collaboratorID.String())

	if role != models.RoleAuthor && role != models.RoleCopyrightHolder && role != models.RoleListed {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.RemoveCollaboratorRole(ctx, collaboratorID, role); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on RemoveCollaboratorRole", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return s.GrantAllRequestsIfNoRoleHoldersLeft(ctx, questionID)
}

// GrantAllRequestsIfNoRoleHoldersLeft — если ни один соавтор не держит ни
// одной роли, удовлетворяет каждый ожидающий запрос роли на вопросе.
// Вызывается после любой операции снятия ролей.
func (s *Service) GrantAllRequestsIfNoRoleHoldersLeft(ctx context.Context, questionID int64) error {
	const op = "service/roles/GrantAllRequestsIfNoRoleHoldersLeft"

	lg := log.Op(ctx, op).With("question_id", questionID)

	collabs, err := s.collaborators(ctx, op, questionID)
	if err != nil {
		return err
	}

	for i := range collabs {
		if collabs[i].HasRole(models.RoleAny) {
			return nil
		}
	}

	requests, err := s.storage.RoleRequestsByQuestion(ctx, questionID)
	if err != nil {
		lg.Error("storage error on RoleRequestsByQuestion", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for i := range requests {
		if err := s.storage.GrantRoleRequest(ctx, requests[i].ID); err != nil {
			lg.Error("storage error on GrantRoleRequest", "request_id", requests[i].ID.String(), "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if len(requests) > 0 {
		lg.Info("granted all pending role requests: no role holders left", "granted", len(requests))
	}

	return nil
}

// collaborators — выборка записей соавторства с единым маппингом ошибок.
func (s *Service) collaborators(ctx context.Context, op string, questionID int64) ([]models.QuestionCollaborator, error) {
	if questionID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	collabs, err := s.storage.CollaboratorsByQuestion(ctx, questionID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on CollaboratorsByQuestion", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return collabs, nil
}
