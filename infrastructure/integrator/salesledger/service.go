package salesledger

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/salesledger/salesledgerclient"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/ledger"
)

// FileSource lê o livro de vendas de um arquivo local
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir livro de vendas %s", s.Path)
	}
	return file, nil
}

func (s *FileSource) Describe() string {
	return "file:" + s.Path
}

// HTTPSource baixa o livro de vendas de uma URL
type HTTPSource struct {
	Client salesledgerclient.Client
}

func (s *HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	body, err := s.Client.DownloadLedger(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao baixar livro de vendas")
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *HTTPSource) Describe() string {
	return "url:" + s.Client.URL()
}

// New escolhe a origem configurada. A URL tem prioridade sobre o arquivo.
func New(cfg *config.Config) ledger.Source {
	if cfg.Ledger.CSVURL != "" {
		return &HTTPSource{
			Client: salesledgerclient.NewClient(cfg.Ledger.CSVURL, 0),
		}
	}
	return &FileSource{Path: cfg.Ledger.CSVPath}
}
