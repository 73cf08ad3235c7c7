package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/goto/workforce/domain"
	"gorm.io/datatypes"
)

type ActionJournal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID        string    `gorm:"index"`
	ActorName      string
	RequestType    string
	RequestID      string
	Action         string
	OverrideAction string
	Provenance     string
	PreviousStatus string
	Endpoint       string
	Reason         string
	Succeeded      bool
	Error          string
	Metadata       datatypes.JSON
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (ActionJournal) TableName() string {
	return "action_journal"
}

func (m *ActionJournal) FromDomain(e *domain.JournalEntry) error {
	if e.ID != "" {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return err
		}
		m.ID = id
	} else {
		m.ID = uuid.New()
	}

	m.Metadata = datatypes.JSON("{}")
	if len(e.Metadata) > 0 {
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return err
		}
		m.Metadata = datatypes.JSON(metadata)
	}

	m.ActorID = e.ActorID
	m.ActorName = e.ActorName
	m.RequestType = string(e.RequestType)
	m.RequestID = e.RequestID
	m.Action = string(e.Action)
	m.OverrideAction = string(e.OverrideAction)
	m.Provenance = string(e.Provenance)
	m.PreviousStatus = string(e.PreviousStatus)
	m.Endpoint = e.Endpoint
	m.Reason = e.Reason
	m.Succeeded = e.Succeeded
	m.Error = e.Error
	m.CreatedAt = e.CreatedAt

	return nil
}

func (m *ActionJournal) ToDomain() (*domain.JournalEntry, error) {
	var metadata map[string]interface{}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return nil, err
		}
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	return &domain.JournalEntry{
		ID:             m.ID.String(),
		ActorID:        m.ActorID,
		ActorName:      m.ActorName,
		RequestType:    domain.RequestType(m.RequestType),
		RequestID:      m.RequestID,
		Action:         domain.ActionType(m.Action),
		OverrideAction: domain.ActionType(m.OverrideAction),
		Provenance:     domain.Provenance(m.Provenance),
		PreviousStatus: domain.RequestStatus(m.PreviousStatus),
		Endpoint:       m.Endpoint,
		Reason:         m.Reason,
		Succeeded:      m.Succeeded,
		Error:          m.Error,
		Metadata:       metadata,
		CreatedAt:      m.CreatedAt,
	}, nil
}
