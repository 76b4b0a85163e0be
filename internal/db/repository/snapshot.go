package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channel-lens/channel-analyzer-go/internal/db"
	"github.com/channel-lens/channel-analyzer-go/internal/db/models"
)

// SnapshotRepository defines operations for stored channel analyses.
type SnapshotRepository interface {
	// Create stores a new analysis snapshot, assigning its ID and timestamp.
	Create(ctx context.Context, snapshot *models.AnalysisSnapshot) error

	// GetByID retrieves a single snapshot by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisSnapshot, error)

	// List retrieves snapshots with filters and pagination, newest first.
	// It returns the page of snapshots and the total matching count.
	List(ctx context.Context, filters *SnapshotFilters) ([]*models.AnalysisSnapshot, int, error)

	// DeleteOlderThan removes snapshots created before the cutoff and
	// returns the number of rows deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// SnapshotFilters contains filter options for listing snapshots.
type SnapshotFilters struct {
	ChannelID string
	Limit     int
	Offset    int
}

type snapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepository{pool: pool}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *models.AnalysisSnapshot) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}

	query := `
		INSERT INTO analysis_snapshots (id, channel_id, channel_name, video_count, sort_order, timezone, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		snapshot.ID,
		snapshot.ChannelID,
		snapshot.ChannelName,
		snapshot.VideoCount,
		snapshot.SortOrder,
		snapshot.Timezone,
		snapshot.Result,
	).Scan(&snapshot.CreatedAt)

	if err != nil {
		return db.WrapError(err, "create snapshot")
	}

	return nil
}

func (r *snapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisSnapshot, error) {
	query := `
		SELECT id, channel_id, channel_name, video_count, sort_order, timezone, result, created_at
		FROM analysis_snapshots
		WHERE id = $1
	`

	snapshot := &models.AnalysisSnapshot{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.ChannelID,
		&snapshot.ChannelName,
		&snapshot.VideoCount,
		&snapshot.SortOrder,
		&snapshot.Timezone,
		&snapshot.Result,
		&snapshot.CreatedAt,
	)

	if err != nil {
		return nil, db.WrapError(err, "get snapshot by id")
	}

	return snapshot, nil
}

func (r *snapshotRepository) List(ctx context.Context, filters *SnapshotFilters) ([]*models.AnalysisSnapshot, int, error) {
	if filters == nil {
		filters = &SnapshotFilters{}
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	countQuery := `
		SELECT count(*)
		FROM analysis_snapshots
		WHERE ($1 = '' OR channel_id = $1)
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, filters.ChannelID).Scan(&total); err != nil {
		return nil, 0, db.WrapError(err, "count snapshots")
	}

	query := `
		SELECT id, channel_id, channel_name, video_count, sort_order, timezone, result, created_at
		FROM analysis_snapshots
		WHERE ($1 = '' OR channel_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, filters.ChannelID, limit, filters.Offset)
	if err != nil {
		return nil, 0, db.WrapError(err, "list snapshots")
	}
	defer rows.Close()

	snapshots, err := scanSnapshots(rows)
	if err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}

func (r *snapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM analysis_snapshots WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, db.WrapError(err, "delete old snapshots")
	}

	return result.RowsAffected(), nil
}

func scanSnapshots(rows pgx.Rows) ([]*models.AnalysisSnapshot, error) {
	var snapshots []*models.AnalysisSnapshot

	for rows.Next() {
		snapshot := &models.AnalysisSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.ChannelID,
			&snapshot.ChannelName,
			&snapshot.VideoCount,
			&snapshot.SortOrder,
			&snapshot.Timezone,
			&snapshot.Result,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, db.WrapError(err, "scan snapshot")
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, db.WrapError(err, "iterate snapshots")
	}

	return snapshots, nil
}
