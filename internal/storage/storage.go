// storage определяет контракты доступа к хранилищу question-сервиса.
//
// Инварианты, которые обязана соблюдать любая реализация:
//   - пара (number, version) уникальна среди опубликованных вопросов;
//   - опубликованная строка неизменяема и неудаляема (ErrPublished);
//   - многошаговые мутации (создание, публикация) атомарны: либо фиксируются
//     все подшаги, либо ни один.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-question-bank/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (например, повтор (number, version)).
	ErrConflict = errors.New("conflict")
	// ErrPublished — попытка изменить или удалить опубликованный вопрос.
	ErrPublished = errors.New("question is published")
)

// CreateQuestionParams — параметры атомарного создания черновика.
//
// Особенности:
//   - Number == 0 -> хранилище назначает следующий свободный номер
//     (семя последовательности — max(number, 1) + 1);
//   - SetupID == nil -> создаётся новая подводка с содержимым SetupContent;
//   - LicenseID == nil -> черновик без лицензии (её потребует публикация);
//   - ProjectID обязателен: проект по умолчанию разрешает сервисный слой
//     через DefaultProjectFor;
//   - CopyRolesFrom -> роли соавторов источника копируются дословно;
//     SetInitialRoles -> создатель получает обе роли и подписку на ветку;
//   - SourceQuestionID и DeriverID вместе -> записывается ребро производной.
//
// Ветка обсуждения создаётся вместе с вопросом в той же транзакции.
type CreateQuestionParams struct {
	Kind             models.Kind
	Content          string
	ContentHTML      string
	ChangesSolution  bool
	Number           int64
	SetupID          *uuid.UUID
	SetupContent     string
	SetupContentHTML string
	LicenseID        *uuid.UUID
	ParentQuestionID *int64
	CreatorID        int64
	SetInitialRoles  bool
	ProjectID        *uuid.UUID
	CopyRolesFrom    *int64
	SourceQuestionID *int64
	DeriverID        *int64
}

// UpdateContentParams — редактируемая проекция черновика.
// Прочие атрибуты (number, version, locked_by, license_id, content_html)
// через этот путь не изменяются.
type UpdateContentParams struct {
	QuestionID int64
	Content    string
	// ContentHTML — свежий рендер Content (кэш, не пользовательский ввод).
	ContentHTML     string
	ChangesSolution *bool
}

// PublishParams — параметры атомарной публикации черновика.
type PublishParams struct {
	QuestionID  int64
	PublisherID int64
	// Version — заранее вычисленный следующий номер версии для Number вопроса.
	Version int32
}

// SearchScope — область поиска.
type SearchScope string

const (
	ScopeAll        SearchScope = "all"
	ScopePublished  SearchScope = "published"
	ScopeDrafts     SearchScope = "drafts"
	ScopeMyProjects SearchScope = "projects"
)

// SearchOptions — фильтры поиска вопросов.
// Текстовый фильтр — подстрочное совпадение по content; ранжирование —
// вне контракта.
type SearchOptions struct {
	Scope SearchScope
	// Kind — nil => любой вид.
	Kind *models.Kind
	Text string
	// UserID — для области ScopeMyProjects.
	UserID int64
	Limit  int32
}

// QuestionStorage — операции над агрегатом вопроса.
type QuestionStorage interface {
	// QuestionByID возвращает вопрос по внутреннему идентификатору.
	QuestionByID(ctx context.Context, id int64) (*models.Question, error)
	// QuestionByNumberAndVersion возвращает опубликованный вопрос точной версии.
	QuestionByNumberAndVersion(ctx context.Context, number int64, version int32) (*models.Question, error)
	// LatestPublished возвращает опубликованный вопрос номера с наибольшей
	// версией (тай-брейк — последнее обновление).
	LatestPublished(ctx context.Context, number int64) (*models.Question, error)
	// CreateQuestion атомарно создаёт черновик со всеми сопутствующими
	// записями (подводка, ветка обсуждения, роли, проект, ребро производной).
	CreateQuestion(ctx context.Context, params CreateQuestionParams) (*models.Question, error)
	// UpdateDraftContent изменяет редактируемую проекцию черновика.
	// Для опубликованного вопроса — ErrPublished.
	UpdateDraftContent(ctx context.Context, params UpdateContentParams) (*models.Question, error)
	// PublishQuestion атомарно публикует черновик: отцепляет и уничтожает
	// осиротевшую пустую подводку, вычищает безролевых соавторов, сбрасывает
	// ветку обсуждения, переподписывает авторов с автоподпиской, назначает
	// версию и издателя. Для уже опубликованного — ErrPublished.
	PublishQuestion(ctx context.Context, params PublishParams) (*models.Question, error)
	// DestroyDraft удаляет черновик каскадно (соавторы, рёбра зависимостей,
	// привязки к проектам, ветка обсуждения) и уничтожает оставшуюся без
	// вопросов подводку. Для опубликованного — ErrPublished.
	DestroyDraft(ctx context.Context, id int64) error
	// SetLock выставляет держателя рекомендательной блокировки.
	SetLock(ctx context.Context, id int64, userID int64, lockedAt time.Time) error
	// ClearLock сбрасывает блокировку в незанятое состояние.
	ClearLock(ctx context.Context, id int64) error
	// SearchQuestions возвращает вопросы по фильтрам области/вида/текста.
	SearchQuestions(ctx context.Context, opts SearchOptions) ([]models.Question, error)
	// QuestionParts возвращает части multipart-вопроса.
	QuestionParts(ctx context.Context, parentID int64) ([]models.Question, error)
}

// CollaboratorStorage — записи соавторства.
// Перенос ролей на новую версию выполняется внутри CreateQuestion
// (CopyRolesFrom), отдельной операции для него нет.
type CollaboratorStorage interface {
	CollaboratorsByQuestion(ctx context.Context, questionID int64) ([]models.QuestionCollaborator, error)
	// RemoveCollaboratorRole снимает флаг роли с записи соавторства.
	RemoveCollaboratorRole(ctx context.Context, collaboratorID uuid.UUID, role models.Role) error
}

// DerivationStorage — рёбра графа производных.
type DerivationStorage interface {
	// DerivationByDerived возвращает ребро, в котором вопрос — производный.
	DerivationByDerived(ctx context.Context, derivedQuestionID int64) (*models.QuestionDerivation, error)
	DerivationsBySource(ctx context.Context, sourceQuestionID int64) ([]models.QuestionDerivation, error)
}

// DependencyStorage — рёбра зависимостей requirement/support.
type DependencyStorage interface {
	AddDependencyPair(ctx context.Context, pair models.QuestionDependencyPair) (*models.QuestionDependencyPair, error)
	// DependencyPairsByQuestion возвращает рёбра, где вопрос участвует с любой
	// стороны.
	DependencyPairsByQuestion(ctx context.Context, questionID int64) ([]models.QuestionDependencyPair, error)
}

// SetupStorage — подводки вопросов.
type SetupStorage interface {
	SetupByID(ctx context.Context, id uuid.UUID) (*models.QuestionSetup, error)
	// UpdateSetupContent изменяет содержимое подводки; запрещено, если хотя бы
	// один привязанный вопрос опубликован (ErrPublished).
	UpdateSetupContent(ctx context.Context, id uuid.UUID, content, contentHTML string) (*models.QuestionSetup, error)
}

// RoleRequestStorage — ожидающие запросы ролей.
type RoleRequestStorage interface {
	RoleRequestsByQuestion(ctx context.Context, questionID int64) ([]models.RoleRequest, error)
	// GrantRoleRequest удовлетворяет запрос: выставляет флаг роли и удаляет
	// запись запроса.
	GrantRoleRequest(ctx context.Context, id uuid.UUID) error
}

// UserStorage — пользователи и отношения заместительства.
type UserStorage interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	// Deputizers возвращает пользователей, доверивших свои роли deputy
	// (рёбра «доверитель -> заместитель»).
	Deputizers(ctx context.Context, deputyID int64) ([]int64, error)
}

// ProjectStorage — проекты и привязки вопросов к проектам.
type ProjectStorage interface {
	// DefaultProjectFor возвращает проект по умолчанию, создавая при отсутствии.
	DefaultProjectFor(ctx context.Context, userID int64) (*models.Project, error)
	ProjectsFor(ctx context.Context, userID int64) ([]models.Project, error)
	AddQuestionToProject(ctx context.Context, projectID uuid.UUID, questionID int64) error
	// IsProjectMember — состоит ли пользователь хотя бы в одном проекте,
	// содержащем вопрос.
	IsProjectMember(ctx context.Context, questionID int64, userID int64) (bool, error)
}

// ThreadStorage — подписки на ветку обсуждения вопроса.
// Сама ветка создаётся вместе с вопросом и сбрасывается при публикации.
type ThreadStorage interface {
	SubscribeToThread(ctx context.Context, questionID int64, userID int64) error
}

// LicenseStorage — лицензии.
type LicenseStorage interface {
	DefaultLicense(ctx context.Context) (*models.License, error)
}

// Storage — полный контракт хранилища question-сервиса.
type Storage interface {
	QuestionStorage
	CollaboratorStorage
	DerivationStorage
	DependencyStorage
	SetupStorage
	RoleRequestStorage
	UserStorage
	ProjectStorage
	ThreadStorage
	LicenseStorage
	Close()
}
