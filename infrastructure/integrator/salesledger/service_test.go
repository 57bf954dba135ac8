package salesledger

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/salesledger/salesledgerclient"
	"github.com/vfg2006/jewelai-api/internal/config"
)

const csvBody = "voucher_date,label_no,category,value\n2025-10-01,A1,RING,10\n"

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o600))

	source := &FileSource{Path: path}
	body, err := source.Fetch(context.Background())
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, csvBody, string(content))
	assert.Equal(t, "file:"+path, source.Describe())
}

func TestFileSource_Fetch_ArquivoInexistente(t *testing.T) {
	source := &FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}

	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "Sucesso", status: http.StatusOK},
		{name: "Status diferente de 200", status: http.StatusNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(csvBody))
			}))
			defer server.Close()

			source := &HTTPSource{Client: salesledgerclient.NewClient(server.URL, 0)}
			body, err := source.Fetch(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			content, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, csvBody, string(content))
		})
	}
}

func TestNew_PrioridadeDaURL(t *testing.T) {
	cfg := &config.Config{Ledger: config.Ledger{CSVPath: "data/sales.csv"}}
	assert.IsType(t, &FileSource{}, New(cfg))

	cfg.Ledger.CSVURL = "http://example.com/sales.csv"
	assert.IsType(t, &HTTPSource{}, New(cfg))
}
