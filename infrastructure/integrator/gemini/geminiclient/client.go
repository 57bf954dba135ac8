package geminiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/jewelai-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     config.Gemini
}

// NewClient cria o cliente REST do Gemini
func NewClient(cfg config.Gemini) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent envia o prompt e devolve o texto do primeiro candidato
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	endpoint, err := url.Parse(strings.TrimRight(c.config.BaseURL, "/") + "/models/" + c.config.Model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("key", c.config.APIKey)
	endpoint.RawQuery = query.Encode()

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.7,
		},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	var response generateContentResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta (status %s): %w", resp.Status, err)
	}

	if resp.StatusCode != http.StatusOK {
		if response.Error != nil {
			return "", fmt.Errorf("requisição falhou com status %s: %s", resp.Status, response.Error.Message)
		}
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta sem candidatos")
	}

	var text strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return text.String(), nil
}
