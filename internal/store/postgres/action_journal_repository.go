package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/internal/store/postgres/model"
	"github.com/goto/workforce/pkg/slices"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolationErrorCode = "23505"

	defaultJournalPageSize = 50
)

var ErrDuplicateJournalEntry = errors.New("journal entry already exists")

// ActionJournalRepository is append-only: entries are never updated or deleted
type ActionJournalRepository struct {
	db *gorm.DB
}

func NewActionJournalRepository(db *gorm.DB) *ActionJournalRepository {
	return &ActionJournalRepository{db: db}
}

func (r *ActionJournalRepository) Append(ctx context.Context, e *domain.JournalEntry) error {
	m := new(model.ActionJournal)
	if err := m.FromDomain(e); err != nil {
		return fmt.Errorf("parsing journal entry: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			var pgError *pgconn.PgError
			if errors.As(err, &pgError) && pgError.Code == pgUniqueViolationErrorCode {
				return fmt.Errorf("%w: %s", ErrDuplicateJournalEntry, m.ID)
			}
			return err
		}

		newEntry, err := m.ToDomain()
		if err != nil {
			return err
		}
		*e = *newEntry

		return nil
	})
}

// List returns the newest entries first unless filter.OrderBy says otherwise
func (r *ActionJournalRepository) List(ctx context.Context, filter domain.ListJournalFilter) ([]*domain.JournalEntry, error) {
	db := r.db.WithContext(ctx)

	if filter.ActorID != "" {
		db = db.Where(`"actor_id" = ?`, filter.ActorID)
	}
	if filter.RequestType != "" {
		db = db.Where(`"request_type" = ?`, string(filter.RequestType))
	}
	if filter.RequestID != "" {
		db = db.Where(`"request_id" = ?`, filter.RequestID)
	}

	actions := make([]string, 0, len(filter.Actions))
	for _, a := range filter.Actions {
		actions = append(actions, string(a))
	}
	if actions = slices.Standardize(actions); len(actions) > 0 {
		db = db.Where(`"action" = ANY(?)`, pq.Array(actions))
	}

	size := filter.Size
	if size <= 0 {
		size = defaultJournalPageSize
	}
	if len(filter.OrderBy) > 0 {
		var err error
		if db, err = addOrderBy(db, filter.OrderBy, journalOrderColumns); err != nil {
			return nil, err
		}
	} else {
		db = db.Order(`"created_at" DESC`)
	}
	db = db.Limit(size)
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.ActionJournal
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := []*domain.JournalEntry{}
	for _, m := range models {
		e, err := m.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("parsing journal entry %s: %w", m.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
