package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/posting-optimizer/internal/types"
)

const postingColumns = `id, remote_id, title, description, company, location,
	job_type, category, salary, focus_keyphrase, meta_description, seo_score,
	optimized_at, created_at, updated_at`

// scanPosting reads one posting row.
func scanPosting(row pgx.Row) (*StoredPosting, error) {
	var p StoredPosting
	err := row.Scan(&p.ID, &p.RemoteID, &p.Title, &p.Description, &p.Company,
		&p.Location, &p.JobType, &p.Category, &p.Salary, &p.FocusKeyphrase,
		&p.MetaDescription, &p.SEOScore, &p.OptimizedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPosting retrieves a posting by its ID. Returns (nil, nil) when the
// posting does not exist.
func (s *Store) GetPosting(ctx context.Context, id uuid.UUID) (*StoredPosting, error) {
	p, err := scanPosting(s.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return p, nil
}

// GetPostingByRemoteID retrieves a posting by its content-system ID.
// Returns (nil, nil) when the posting does not exist.
func (s *Store) GetPostingByRemoteID(ctx context.Context, remoteID int64) (*StoredPosting, error) {
	p, err := scanPosting(s.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE remote_id = $1`, remoteID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting by remote id: %w", err)
	}
	return p, nil
}

// ListPendingPostings returns postings that were never optimized or changed
// since their last optimization, oldest first.
func (s *Store) ListPendingPostings(ctx context.Context, limit int) ([]*StoredPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM postings
		 WHERE optimized_at IS NULL OR updated_at > optimized_at
		 ORDER BY updated_at ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending postings: %w", err)
	}
	defer rows.Close()

	var postings []*StoredPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read postings: %w", err)
	}
	return postings, nil
}

// UpsertPosting creates or refreshes a posting row keyed by its remote ID.
func (s *Store) UpsertPosting(ctx context.Context, input *PostingInput) (*StoredPosting, error) {
	p, err := scanPosting(s.pool.QueryRow(ctx,
		`INSERT INTO postings (remote_id, title, description, company, location,
		                       job_type, category, salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (remote_id) DO UPDATE SET
		   title = $2, description = $3, company = $4, location = $5,
		   job_type = $6, category = $7, salary = $8, updated_at = NOW()
		 RETURNING `+postingColumns,
		input.RemoteID, input.Title, input.Description, input.Company,
		input.Location, input.JobType, input.Category, input.Salary))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert posting: %w", err)
	}
	return p, nil
}

// SaveOptimization records an optimize run for a posting: it inserts an
// audit row and writes the derived SEO fields back onto the posting.
func (s *Store) SaveOptimization(ctx context.Context, postingID uuid.UUID, result *types.OptimizationResult) (uuid.UUID, error) {
	recsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO optimizations (posting_id, score, focus_keyphrase,
		                            meta_description, optimized_title, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		postingID, result.Score, result.FocusKeyphrase, result.MetaDescription,
		result.OptimizedTitle, recsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save optimization: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE postings SET focus_keyphrase = $1, meta_description = $2,
		        seo_score = $3, optimized_at = NOW()
		 WHERE id = $4`,
		result.FocusKeyphrase, result.MetaDescription, result.Score, postingID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to update posting: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit optimization: %w", err)
	}
	return id, nil
}

// ListOptimizations returns the audit rows for a posting, newest first.
func (s *Store) ListOptimizations(ctx context.Context, postingID uuid.UUID) ([]*OptimizationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, posting_id, score, focus_keyphrase, meta_description,
		        optimized_title, recommendations, created_at
		 FROM optimizations WHERE posting_id = $1
		 ORDER BY created_at DESC`, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list optimizations: %w", err)
	}
	defer rows.Close()

	var records []*OptimizationRecord
	for rows.Next() {
		var rec OptimizationRecord
		var recsJSON []byte
		err := rows.Scan(&rec.ID, &rec.PostingID, &rec.Score, &rec.FocusKeyphrase,
			&rec.MetaDescription, &rec.OptimizedTitle, &recsJSON, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan optimization: %w", err)
		}
		if recsJSON != nil {
			_ = json.Unmarshal(recsJSON, &rec.Recommendations)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read optimizations: %w", err)
	}
	return records, nil
}
