package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

const collaboratorColumns = `
id, question_id, user_id, position, is_author, is_copyright_holder, is_listed, created_at, updated_at
`

func scanCollaborator(row pgx.Row) (*models.QuestionCollaborator, error) {
	var c models.QuestionCollaborator

	if err := row.Scan(
		&c.ID,
		&c.QuestionID,
		&c.UserID,
		&c.Position,
		&c.IsAuthor,
		&c.IsCopyrightHolder,
		&c.IsListed,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

// CollaboratorsByQuestion возвращает записи соавторства вопроса в порядке
// позиций.
func (s *Storage) CollaboratorsByQuestion(ctx context.Context, questionID int64) ([]models.QuestionCollaborator, error) {
	const op = "storage/postgres/collaborators/CollaboratorsByQuestion"

	q := `SELECT ` + collaboratorColumns + ` FROM question_collaborators WHERE question_id = $1 ORDER BY position, created_at`

	rows, err := s.db.Query(ctx, q, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.QuestionCollaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RemoveCollaboratorRole снимает флаг названной роли с записи соавторства.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) RemoveCollaboratorRole(ctx context.Context, collaboratorID uuid.UUID, role models.Role) error {
	const op = "storage/postgres/collaborators/RemoveCollaboratorRole"

	var column string
	switch role {
	case models.RoleAuthor:
		column = "is_author"
	case models.RoleCopyrightHolder:
		column = "is_copyright_holder"
	case models.RoleListed:
		column = "is_listed"
	default:
		return fmt.Errorf("%s: unknown role %q", op, role)
	}

	q := fmt.Sprintf(`UPDATE question_collaborators SET %s = FALSE, updated_at = now() WHERE id = $1`, column)

	tag, err := s.db.Exec(ctx, q, collaboratorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RoleRequestsByQuestion возвращает ожидающие запросы ролей вопроса.
func (s *Storage) RoleRequestsByQuestion(ctx context.Context, questionID int64) ([]models.RoleRequest, error) {
	const op = "storage/postgres/collaborators/RoleRequestsByQuestion"

	rows, err := s.db.Query(ctx, `
		SELECT id, question_id, user_id, role, created_at
		FROM question_role_requests
		WHERE question_id = $1
		ORDER BY created_at`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.RoleRequest
	for rows.Next() {
		var r models.RoleRequest
		var role string

		if err := rows.Scan(&r.ID, &r.QuestionID, &r.UserID, &role, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		r.Role = models.Role(role)
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// GrantRoleRequest удовлетворяет запрос роли: выставляет флаг на записи
// соавторства (создавая её при отсутствии) и удаляет запись запроса.
// Ошибки: storage.ErrNotFound при отсутствии запроса.
func (s *Storage) GrantRoleRequest(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/collaborators/GrantRoleRequest"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var questionID, userID int64
	var role string
	err = tx.QueryRow(ctx, `
		DELETE FROM question_role_requests WHERE id = $1
		RETURNING question_id, user_id, role`,
		id,
	).Scan(&questionID, &userID, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO question_collaborators (question_id, user_id, position, is_author, is_copyright_holder, is_listed)
		VALUES ($1, $2,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM question_collaborators WHERE question_id = $1),
			$3 = 'author', $3 = 'copyright_holder', TRUE)
		ON CONFLICT (question_id, user_id) DO UPDATE SET
			is_author           = question_collaborators.is_author OR EXCLUDED.is_author,
			is_copyright_holder = question_collaborators.is_copyright_holder OR EXCLUDED.is_copyright_holder,
			is_listed           = TRUE,
			updated_at          = now()`,
		questionID, userID, role,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
