package salesledgerclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Client interface {
	DownloadLedger(ctx context.Context) ([]byte, error)
	URL() string
}

type SalesLedgerClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient cria o cliente que baixa o CSV de vendas de uma URL
func NewClient(endpoint string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SalesLedgerClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
	}
}

func (c *SalesLedgerClient) URL() string {
	return c.endpoint
}

func (c *SalesLedgerClient) DownloadLedger(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL do livro de vendas: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return buf.Bytes(), nil
}
