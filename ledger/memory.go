package ledger

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ankit/temple-ledger-go/access"
	"github.com/ankit/temple-ledger-go/models"
)

// MemoryStore keeps records in process memory. It backs the test suite and
// dev runs without a MongoDB instance. Same contract as MongoStore.
type MemoryStore struct {
	mu    sync.RWMutex
	kind  Kind
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]models.Record
}

func NewMemoryStore(kind Kind) *MemoryStore {
	return &MemoryStore{
		kind: kind,
		byID: make(map[primitive.ObjectID]models.Record),
	}
}

func (s *MemoryStore) Kind() Kind { return s.kind }

func (s *MemoryStore) Create(_ context.Context, raw map[string]any, owner access.Identity) (models.Record, error) {
	fields, err := Validate(s.kind, raw)
	if err != nil {
		return models.Record{}, err
	}

	record := newRecord(s.kind, fields, owner, time.Now())
	record.ID = primitive.NewObjectID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[record.ID] = record
	s.order = append(s.order, record.ID)
	return record, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.byID[id])
	}
	return records, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, invalidf("invalid record id")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byID[oid]
	if !ok {
		return models.Record{}, ErrNotFoundOrUnauthorized
	}
	return record, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, raw map[string]any, requester access.Identity) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, invalidf("invalid record id")
	}

	fields, err := Validate(s.kind, raw)
	if err != nil {
		return models.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[oid]
	if !ok || record.CreatedBy != requester.Username {
		return models.Record{}, ErrNotFoundOrUnauthorized
	}

	applyFields(&record, fields, time.Now())
	s.byID[oid] = record
	return record, nil
}

func (s *MemoryStore) ClearAll(_ context.Context, requesterRole string) (int64, error) {
	if requesterRole != models.RoleAdmin {
		return 0, access.ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	count := int64(len(s.order))
	s.byID = make(map[primitive.ObjectID]models.Record)
	s.order = nil
	return count, nil
}

func (s *MemoryStore) Summarize(_ context.Context) (models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary models.Summary
	for _, record := range s.byID {
		summary.TotalRecords++
		summary.TotalAmount += record.TotalAmount
		switch record.Status {
		case models.StatusCompleted:
			summary.CompletedCount++
			summary.CompletedAmount += record.PaidAmount
		case models.StatusPending:
			summary.PendingCount++
		}
	}
	return summary, nil
}

func (s *MemoryStore) SetReceiptURL(_ context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return invalidf("invalid record id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[oid]
	if !ok {
		return ErrNotFoundOrUnauthorized
	}
	record.ReceiptURL = url
	record.UpdatedAt = time.Now()
	s.byID[oid] = record
	return nil
}
