package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotConfigured   = errors.New("chave da API do Gemini não configurada")
	ErrRequestFailed   = errors.New("falha na chamada ao Gemini")
	ErrInvalidJSON     = errors.New("resposta do Gemini não é um JSON válido")
	ErrSchemaViolation = errors.New("resposta do Gemini fora do formato esperado")
)

// NarrativeIntegrator gera as análises de mercado. Qualquer resposta fora do
// formato é erro; nada é completado com valores inventados.
type NarrativeIntegrator interface {
	AnalyzeKeyword(ctx context.Context, keyword string) (*domain.KeywordAnalysis, error)
	AnalyzeMarketOverview(ctx context.Context) (*domain.MarketOverview, error)
	IsConfigured() bool
}

type GeminiService struct {
	cfg      config.Gemini
	Client   geminiclient.Client
	validate *validator.Validate
	now      func() time.Time
}

func New(cfg config.Gemini, client geminiclient.Client) NarrativeIntegrator {
	return &GeminiService{
		cfg:      cfg,
		Client:   client,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *GeminiService) IsConfigured() bool {
	return s.cfg.APIKey != ""
}

func (s *GeminiService) AnalyzeKeyword(ctx context.Context, keyword string) (*domain.KeywordAnalysis, error) {
	var analysis domain.KeywordAnalysis
	if err := s.generate(ctx, keywordPrompt(keyword), &analysis); err != nil {
		return nil, errors.WithMessagef(err, "erro ao analisar palavra-chave %q", keyword)
	}
	return &analysis, nil
}

func (s *GeminiService) AnalyzeMarketOverview(ctx context.Context) (*domain.MarketOverview, error) {
	var overview domain.MarketOverview
	if err := s.generate(ctx, marketOverviewPrompt(s.now()), &overview); err != nil {
		return nil, errors.WithMessage(err, "erro ao gerar visão geral do mercado")
	}
	return &overview, nil
}

func (s *GeminiService) generate(ctx context.Context, prompt string, target any) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	text, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return errors.Wrap(ErrRequestFailed, err.Error())
	}

	if err := json.Unmarshal([]byte(StripCodeFence(text)), target); err != nil {
		return errors.Wrap(ErrInvalidJSON, err.Error())
	}

	if err := s.validate.Struct(target); err != nil {
		return errors.Wrap(ErrSchemaViolation, err.Error())
	}

	return nil
}

// StripCodeFence remove o bloco ```json ... ``` que o modelo às vezes devolve
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
