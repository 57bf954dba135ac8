package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

// ErrSourceUnavailable indica que o livro de vendas não pôde ser lido
var ErrSourceUnavailable = errors.New("livro de vendas indisponível")

// Source entrega o texto bruto do livro de vendas
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
	Describe() string
}

// State é a fase do ciclo de vida do cache
type State string

const (
	StateEmpty   State = "empty"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Status é a visão do cache exposta no healthcheck e no status do cron
type Status struct {
	State    State      `json:"state"`
	Source   string     `json:"source"`
	Records  int        `json:"records"`
	Stats    ParseStats `json:"stats"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	LastErr  string     `json:"last_error,omitempty"`
}

// Loader é o contrato consumido pelos serviços que precisam do livro de vendas
type Loader interface {
	Load(ctx context.Context) ([]domain.SalesRecord, error)
	Reset()
	Status() Status
}

// Cache carrega o livro de vendas uma única vez por processo e compartilha o
// resultado. Chamadas concorrentes durante a carga aguardam a mesma carga.
type Cache struct {
	source Source
	parser *Parser

	mu       sync.Mutex
	state    State
	records  []domain.SalesRecord
	stats    ParseStats
	loadedAt time.Time
	lastErr  error
	// done é fechado quando a carga em andamento termina, com sucesso ou não
	done chan struct{}
}

func NewCache(source Source, parser *Parser) *Cache {
	if parser == nil {
		parser = NewParser(',')
	}
	return &Cache{
		source: source,
		parser: parser,
		state:  StateEmpty,
	}
}

// Load devolve os registros em cache, carregando-os se necessário.
// O slice retornado é compartilhado e não deve ser alterado.
func (c *Cache) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	for {
		c.mu.Lock()
		switch c.state {
		case StateReady:
			records := c.records
			c.mu.Unlock()
			return records, nil

		case StateLoading:
			done := c.done
			c.mu.Unlock()

			select {
			case <-done:
				// Reavalia o estado: a carga pode ter falhado
				if err := c.failedLoad(ctx, done); err != nil {
					return nil, err
				}
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}

		default:
			c.state = StateLoading
			done := make(chan struct{})
			c.done = done
			c.mu.Unlock()

			return c.load(ctx, done)
		}
	}
}

// failedLoad retorna o erro da carga que acabou de terminar, quando nenhuma
// outra carga foi iniciada depois dela. Se a carga caiu porque o contexto de
// quem a iniciou foi cancelado, e o contexto de quem espera segue válido,
// retorna nil para que o chamador inicie uma nova carga.
func (c *Cache) failedLoad(ctx context.Context, done chan struct{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEmpty || c.done != done || c.lastErr == nil {
		return nil
	}
	if errors.Is(c.lastErr, context.Canceled) && ctx.Err() == nil {
		return nil
	}
	return c.lastErr
}

func (c *Cache) load(ctx context.Context, done chan struct{}) ([]domain.SalesRecord, error) {
	records, stats, err := c.fetchAndParse(ctx)

	c.mu.Lock()
	defer func() {
		close(done)
		c.mu.Unlock()
	}()

	if err != nil {
		c.state = StateEmpty
		c.lastErr = err
		logrus.WithError(err).WithField("source", c.source.Describe()).Error("ledger: falha ao carregar livro de vendas")
		return nil, err
	}

	c.state = StateReady
	c.records = records
	c.stats = stats
	c.loadedAt = time.Now()
	c.lastErr = nil

	return records, nil
}

func (c *Cache) fetchAndParse(ctx context.Context) ([]domain.SalesRecord, ParseStats, error) {
	body, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer body.Close()

	records, stats, err := c.parser.Parse(body)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: erro ao ler %s: %v", ErrSourceUnavailable, c.source.Describe(), err)
	}

	return records, stats, nil
}

// Reset descarta o resultado carregado. Uma carga em andamento não é afetada.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady {
		return
	}

	c.state = StateEmpty
	c.records = nil
	c.stats = ParseStats{}
}

func (c *Cache) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:   c.state,
		Source:  c.source.Describe(),
		Records: len(c.records),
		Stats:   c.stats,
	}
	if !c.loadedAt.IsZero() {
		loadedAt := c.loadedAt
		status.LoadedAt = &loadedAt
	}
	if c.lastErr != nil {
		status.LastErr = c.lastErr.Error()
	}
	return status
}
