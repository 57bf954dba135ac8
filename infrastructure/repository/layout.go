package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/jewelai-api/infrastructure/database/postgres"
)

const (
	dashboardLayoutsTable = "dashboard_layouts dl"
	// DefaultLayoutID identifica o único layout do painel
	DefaultLayoutID = "default"
)

// LayoutRepository guarda o blob JSON do layout sem interpretá-lo.
// A migração de versões é responsabilidade do caso de uso.
type LayoutRepository interface {
	GetLayout(ctx context.Context) ([]byte, error)
	SaveLayout(ctx context.Context, payload []byte) error
}

type layoutRepository struct {
	conn postgres.Queryer
}

func NewLayoutRepository(conn postgres.Queryer) LayoutRepository {
	return &layoutRepository{
		conn: conn,
	}
}

// GetLayout retorna nil, nil quando nada foi persistido ainda
func (r *layoutRepository) GetLayout(ctx context.Context) ([]byte, error) {
	query, args, err := squirrel.
		Select("dl.payload").
		From(dashboardLayoutsTable).
		Where(squirrel.Eq{"dl.id": DefaultLayoutID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar layout: %w", err)
	}

	return payload, nil
}

func (r *layoutRepository) SaveLayout(ctx context.Context, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("payload de layout não é um JSON válido")
	}

	query := squirrel.StatementBuilder.
		Insert("dashboard_layouts").
		Columns("id", "payload").
		Values(DefaultLayoutID, payload).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
