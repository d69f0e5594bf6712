package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store implementación del puerto DocumentStore sobre PostgreSQL JSONB.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el adaptador de persistencia documental.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema crea la tabla de documentos si no existe. El almacén no
// impone esquema alguno sobre el contenido de data.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS documents (
			id         UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	idx := `CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection)`
	if _, err := s.pool.Exec(ctx, idx); err != nil {
		return fmt.Errorf("create collection index: %w", err)
	}
	return nil
}

// Insert inserta un documento en la colección y devuelve su id generado.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	id := uuid.New().String()
	query := `INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, query, id, collection, data); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

// List devuelve todos los documentos de la colección, orden no garantizado.
func (s *Store) List(ctx context.Context, collection string) ([]repository.Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1`
	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()
	return scanDocuments(rows, collection)
}

// Get devuelve el documento por id, o nil si no existe.
func (s *Store) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil // un id que no es UUID no puede existir
	}
	query := `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`
	return s.queryOne(ctx, collection, query, collection, id)
}

// FindOneBy devuelve un documento cuyo campo tenga el valor dado, o nil.
func (s *Store) FindOneBy(ctx context.Context, collection, field, value string) (*repository.Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1 AND data->>$2 = $3 LIMIT 1`
	return s.queryOne(ctx, collection, query, collection, field, value)
}

// FindOneBy2 devuelve un documento que coincida en los dos campos, o nil.
func (s *Store) FindOneBy2(ctx context.Context, collection, field1, value1, field2, value2 string) (*repository.Document, error) {
	query := `
		SELECT id, data FROM documents
		WHERE collection = $1 AND data->>$2 = $3 AND data->>$4 = $5
		LIMIT 1`
	return s.queryOne(ctx, collection, query, collection, field1, value1, field2, value2)
}

// UpdateByID mezcla las claves de patch sobre el documento (merge superficial JSONB).
func (s *Store) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}
	query := `UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2`
	cmd, err := s.pool.Exec(ctx, query, collection, id, data)
	if err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update %s: documento %s no existe", collection, id)
	}
	return nil
}

// Count devuelve el número de documentos de la colección.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	query := `SELECT count(*) FROM documents WHERE collection = $1`
	if err := s.pool.QueryRow(ctx, query, collection).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// CountByFieldIn cuenta los documentos cuyo campo esté entre los valores dados.
func (s *Store) CountByFieldIn(ctx context.Context, collection, field string, values []string) (int64, error) {
	var n int64
	query := `SELECT count(*) FROM documents WHERE collection = $1 AND data->>$2 = ANY($3)`
	if err := s.pool.QueryRow(ctx, query, collection, field, values).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s by %s: %w", collection, field, err)
	}
	return n, nil
}

// ListNumericAtMost devuelve hasta limit documentos cuyo campo numérico sea <= max.
func (s *Store) ListNumericAtMost(ctx context.Context, collection, field string, max decimal.Decimal, limit int) ([]repository.Document, error) {
	query := `
		SELECT id, data FROM documents
		WHERE collection = $1 AND (data->>$2)::numeric <= $3
		LIMIT $4`
	rows, err := s.pool.Query(ctx, query, collection, field, max, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", collection, field, err)
	}
	defer rows.Close()
	return scanDocuments(rows, collection)
}

// Collections devuelve los nombres de colección con al menos un documento.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Ping verifica la conectividad con el almacén.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) queryOne(ctx context.Context, collection, query string, args ...any) (*repository.Document, error) {
	var doc repository.Document
	err := s.pool.QueryRow(ctx, query, args...).Scan(&doc.ID, &doc.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return &doc, nil
}

func scanDocuments(rows pgx.Rows, collection string) ([]repository.Document, error) {
	var docs []repository.Document
	for rows.Next() {
		var doc repository.Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
