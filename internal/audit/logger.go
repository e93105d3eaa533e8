package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// Sink persists audit events. The DB-backed Logger is the production sink;
// tests substitute a capturing one.
type Sink interface {
	Log(action, entity, entityID string, metadata any) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
