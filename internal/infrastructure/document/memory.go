package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*MemoryStore)(nil)

// MemoryStore implementación en memoria del puerto DocumentStore. La usan
// los tests de handlers y casos de uso; reproduce la semántica del adaptador
// JSONB (ids uuid, merge superficial, comparación textual de campos).
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]repository.Document
}

// NewMemoryStore construye el almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]repository.Document)}
}

// Insert serializa el documento igual que el adaptador JSONB (round-trip JSON).
func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	data, err := toMap(doc)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection], repository.Document{ID: id, Data: data})
	return id, nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.collections[collection]
	out := make([]repository.Document, len(docs))
	copy(out, docs)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.collections[collection] {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindOneBy(_ context.Context, collection, field, value string) (*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.collections[collection] {
		if fieldString(d.Data, field) == value {
			doc := d
			return &doc, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindOneBy2(_ context.Context, collection, field1, value1, field2, value2 string) (*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.collections[collection] {
		if fieldString(d.Data, field1) == value1 && fieldString(d.Data, field2) == value2 {
			doc := d
			return &doc, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) UpdateByID(_ context.Context, collection, id string, patch map[string]any) error {
	data, err := toMap(patch)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			for k, v := range data {
				docs[i].Data[k] = v
			}
			return nil
		}
	}
	return fmt.Errorf("update %s: documento %s no existe", collection, id)
}

func (s *MemoryStore) Count(_ context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}

func (s *MemoryStore) CountByFieldIn(_ context.Context, collection, field string, values []string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, d := range s.collections[collection] {
		v := fieldString(d.Data, field)
		for _, want := range values {
			if v == want {
				n++
				break
			}
		}
	}
	return n, nil
}

func (s *MemoryStore) ListNumericAtMost(_ context.Context, collection, field string, max decimal.Decimal, limit int) ([]repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []repository.Document
	for _, d := range s.collections[collection] {
		val, ok := numericField(d.Data, field)
		if !ok || val.GreaterThan(max) {
			continue
		}
		out = append(out, d)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func toMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}

func fieldString(data map[string]any, field string) string {
	v, ok := data[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func numericField(data map[string]any, field string) (decimal.Decimal, bool) {
	switch v := data[field].(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
