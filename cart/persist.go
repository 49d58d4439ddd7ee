package cart

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

// ErrNotFound is returned by Load when no snapshot exists for a key.
var ErrNotFound = errors.New("cart: no snapshot for key")

// Persister is the durable storage boundary for cart snapshots. Save is
// called on every mutation and may fail without affecting the cart.
type Persister interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
}

// GormPersister keeps one cart_records row per session.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

func (p *GormPersister) Save(key string, data []byte) error {
	record := models.CartRecord{SessionID: key, Payload: data}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
}

func (p *GormPersister) Load(key string) ([]byte, error) {
	var record models.CartRecord
	if err := p.db.First(&record, "session_id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record.Payload, nil
}

// MemoryPersister is an in-process Persister used in tests and when the
// service runs without a database.
type MemoryPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (p *MemoryPersister) Save(key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	p.data[key] = cp
	return nil
}

func (p *MemoryPersister) Load(key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}
