package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/jewelai-api/infrastructure/database/postgres"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

const (
	categorySnapshotsTable = "category_snapshots cs"
)

type CategorySnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.CategorySnapshot) error
	GetLatestSnapshot(ctx context.Context) (*domain.CategorySnapshot, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type categorySnapshotRepository struct {
	conn postgres.Queryer
}

func NewCategorySnapshotRepository(conn postgres.Queryer) CategorySnapshotRepository {
	return &categorySnapshotRepository{
		conn: conn,
	}
}

// SaveSnapshot grava o agregado. Existe no máximo um snapshot por data final e janela.
func (r *categorySnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.CategorySnapshot) error {
	categoriesJSON, err := json.Marshal(snapshot.Categories)
	if err != nil {
		return fmt.Errorf("erro ao serializar categorias para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("category_snapshots").
		Columns("id", "window_end", "window_days", "categories").
		Values(
			snapshot.ID,
			snapshot.WindowEnd,
			snapshot.WindowDays,
			categoriesJSON,
		).
		Suffix(`
			ON CONFLICT (window_end, window_days) DO UPDATE SET
				categories = EXCLUDED.categories,
				created_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetLatestSnapshot retorna nil, nil quando ainda não existe snapshot
func (r *categorySnapshotRepository) GetLatestSnapshot(ctx context.Context) (*domain.CategorySnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.window_end, cs.window_days, cs.categories, cs.created_at").
		From(categorySnapshotsTable).
		OrderBy("cs.window_end DESC", "cs.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *categorySnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("category_snapshots").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *categorySnapshotRepository) scanSnapshot(row *sql.Row) (*domain.CategorySnapshot, error) {
	snapshot := &domain.CategorySnapshot{}
	var categoriesJSON []byte
	var windowEnd time.Time

	err := row.Scan(
		&snapshot.ID,
		&windowEnd,
		&snapshot.WindowDays,
		&categoriesJSON,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.WindowEnd = windowEnd.Format(time.DateOnly)

	if categoriesJSON != nil {
		if err := json.Unmarshal(categoriesJSON, &snapshot.Categories); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de categories: %w", err)
		}
	}

	return snapshot, nil
}
