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

// UserByID возвращает пользователя по идентификатору.
// Ошибки: storage.ErrNotFound.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage/postgres/users/UserByID"

	var u models.User
	err := s.db.QueryRow(ctx, `
		SELECT id, full_name, auto_author_subscribe, created_at
		FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.FullName, &u.AutoAuthorSubscribe, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

// Deputizers возвращает идентификаторы пользователей, доверивших свои роли
// заместителю (рёбра «доверитель -> заместитель»).
func (s *Storage) Deputizers(ctx context.Context, deputyID int64) ([]int64, error) {
	const op = "storage/postgres/users/Deputizers"

	rows, err := s.db.Query(ctx,
		`SELECT deputizer_id FROM deputizations WHERE deputy_id = $1 ORDER BY deputizer_id`,
		deputyID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

const projectColumns = `id, owner_id, name, is_default, created_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project

	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Default, &p.CreatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

// DefaultProjectFor возвращает проект по умолчанию пользователя, создавая его
// при отсутствии (вместе с членством владельца).
func (s *Storage) DefaultProjectFor(ctx context.Context, userID int64) (*models.Project, error) {
	const op = "storage/postgres/users/DefaultProjectFor"

	q := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 AND is_default LIMIT 1`

	project, err := scanProject(s.db.QueryRow(ctx, q, userID))
	if err == nil {
		return project, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	project, err = scanProject(tx.QueryRow(ctx, `
		INSERT INTO projects (owner_id, name, is_default)
		VALUES ($1, 'Default Project', TRUE)
		RETURNING `+projectColumns,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`,
		project.ID, userID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return project, nil
}

// ProjectsFor возвращает проекты, в которых пользователь состоит.
func (s *Storage) ProjectsFor(ctx context.Context, userID int64) ([]models.Project, error) {
	const op = "storage/postgres/users/ProjectsFor"

	rows, err := s.db.Query(ctx, `
		SELECT `+projectColumns+` FROM projects p
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.user_id = $1
		ORDER BY p.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// AddQuestionToProject привязывает вопрос к проекту; повтор привязки — no-op.
// Ошибки: storage.ErrNotFound — проект или вопрос отсутствуют (FK).
func (s *Storage) AddQuestionToProject(ctx context.Context, projectID uuid.UUID, questionID int64) error {
	const op = "storage/postgres/users/AddQuestionToProject"

	_, err := s.db.Exec(ctx, `
		INSERT INTO project_questions (project_id, question_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		projectID, questionID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsProjectMember — состоит ли пользователь хотя бы в одном проекте,
// содержащем вопрос.
func (s *Storage) IsProjectMember(ctx context.Context, questionID int64, userID int64) (bool, error) {
	const op = "storage/postgres/users/IsProjectMember"

	var member bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM project_questions pq
			JOIN project_members pm ON pm.project_id = pq.project_id
			WHERE pq.question_id = $1 AND pm.user_id = $2)`,
		questionID, userID,
	).Scan(&member)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return member, nil
}

// SubscribeToThread подписывает пользователя на ветку обсуждения вопроса;
// повтор подписки — no-op.
// Ошибки: storage.ErrNotFound — ветки нет.
func (s *Storage) SubscribeToThread(ctx context.Context, questionID int64, userID int64) error {
	const op = "storage/postgres/users/SubscribeToThread"

	tag, err := s.db.Exec(ctx, `
		INSERT INTO comment_thread_subscriptions (thread_id, user_id)
		SELECT t.id, $2 FROM comment_threads t WHERE t.question_id = $1
		ON CONFLICT DO NOTHING`,
		questionID, userID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := s.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM comment_threads WHERE question_id = $1)`, questionID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if !exists {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
	}

	return nil
}

// DefaultLicense возвращает лицензию по умолчанию.
// Ошибки: storage.ErrNotFound — лицензия по умолчанию не настроена.
func (s *Storage) DefaultLicense(ctx context.Context) (*models.License, error) {
	const op = "storage/postgres/users/DefaultLicense"

	var l models.License
	err := s.db.QueryRow(ctx,
		`SELECT id, name, is_default, created_at FROM licenses WHERE is_default LIMIT 1`,
	).Scan(&l.ID, &l.Name, &l.Default, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &l, nil
}
