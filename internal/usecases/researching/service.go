package researching

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/jewelai-api/internal/domain"
	errorcodes "github.com/vfg2006/jewelai-api/pkg/apiErrors"
)

type Researcher interface {
	// AnalyzeKeyword sempre devolve o resultado da própria requisição; o
	// "último resultado" só é trocado se nenhuma requisição mais nova foi emitida
	AnalyzeKeyword(ctx context.Context, keyword string) (*domain.KeywordAnalysisResult, error)
	LatestKeywordAnalysis() (*domain.KeywordAnalysisResult, error)
	AnalyzeMarketOverview(ctx context.Context) (*domain.MarketOverview, error)
}

type Service struct {
	narrative gemini.NarrativeIntegrator

	sequence atomic.Uint64

	mu     sync.RWMutex
	latest *domain.KeywordAnalysisResult
}

func NewService(narrative gemini.NarrativeIntegrator) Researcher {
	return &Service{
		narrative: narrative,
	}
}

func (s *Service) AnalyzeKeyword(ctx context.Context, keyword string) (*domain.KeywordAnalysisResult, error) {
	if !s.narrative.IsConfigured() {
		return nil, NewResearchError(ErrNotConfigured, errorcodes.ErrCommunication, "defina GEMINI_API_KEY")
	}

	keyword = strings.TrimSpace(keyword)
	seq := s.sequence.Add(1)

	analysis, err := s.narrative.AnalyzeKeyword(ctx, keyword)
	if err != nil {
		logrus.WithError(err).WithField("sequence", seq).Error("research: erro ao analisar palavra-chave")
		return nil, NewResearchError(ErrNarrativeService, errorcodes.ErrExternalService, err.Error())
	}

	result := &domain.KeywordAnalysisResult{
		Sequence:   seq,
		AnalyzedAt: time.Now(),
		Analysis:   analysis,
	}

	s.mu.Lock()
	if seq == s.sequence.Load() {
		s.latest = result
	} else {
		logrus.WithField("sequence", seq).Debug("research: resposta antiga descartada do último resultado")
	}
	s.mu.Unlock()

	return result, nil
}

func (s *Service) LatestKeywordAnalysis() (*domain.KeywordAnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, NewResearchError(ErrNoAnalysis, errorcodes.ErrResourceNotFound, "")
	}
	return s.latest, nil
}

func (s *Service) AnalyzeMarketOverview(ctx context.Context) (*domain.MarketOverview, error) {
	if !s.narrative.IsConfigured() {
		return nil, NewResearchError(ErrNotConfigured, errorcodes.ErrCommunication, "defina GEMINI_API_KEY")
	}

	overview, err := s.narrative.AnalyzeMarketOverview(ctx)
	if err != nil {
		logrus.WithError(err).Error("research: erro ao gerar visão geral do mercado")
		return nil, NewResearchError(ErrNarrativeService, errorcodes.ErrExternalService, err.Error())
	}

	return overview, nil
}
