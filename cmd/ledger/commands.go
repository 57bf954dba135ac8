package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/salesledger"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/snapshot"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/internal/usecases/reporting"
	"github.com/vfg2006/jewelai-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// options são as flags globais compartilhadas pelos subcomandos
type options struct {
	file       string
	url        string
	delimiter  string
	staticPath string
	output     string
	start      string
	end        string
	days       int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "ledger",
		Short:         "Calcula os indicadores de estoque a partir do CSV de vendas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(logrus.WarnLevel)
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("--output deve ser %s ou %s", outputJSON, outputYAML)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "data/sales_data.csv", "caminho do CSV de vendas")
	flags.StringVar(&opts.url, "url", "", "URL do CSV de vendas; tem prioridade sobre --file")
	flags.StringVar(&opts.delimiter, "delimiter", ",", "separador de campos do CSV")
	flags.StringVar(&opts.staticPath, "static", "", "JSON de categorias usado no modo estimativa")
	flags.StringVarP(&opts.output, "output", "o", outputJSON, "formato de saída: json ou yaml")
	flags.StringVar(&opts.start, "start", "", "data inicial (YYYY-MM-DD)")
	flags.StringVar(&opts.end, "end", "", "data final (YYYY-MM-DD)")
	flags.IntVar(&opts.days, "days", 0, "janela em dias terminando na última data do livro")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "logs detalhados")

	rootCmd.AddCommand(
		newKPIsCmd(opts),
		newCategoriesCmd(opts),
		newTrendsCmd(opts),
		newItemsCmd(opts),
		newReportCmd(opts),
	)

	return rootCmd
}

func newKPIsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Resumo de KPIs do estoque",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, filters, err := opts.build()
			if err != nil {
				return err
			}

			summary, err := service.GetKPISummary(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), summary)
		},
	}
}

func newCategoriesCmd(opts *options) *cobra.Command {
	var estimate bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Agregado por categoria",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, filters, err := opts.build()
			if err != nil {
				return err
			}

			var response *domain.CategoryInsightsResponse
			if estimate {
				days := opts.days
				if days == 0 {
					days = insighting.EstimateBaseWindowDays
				}
				response, err = service.GetEstimatedCategories(cmd.Context(), days)
			} else {
				response, err = service.GetCategoryInsights(cmd.Context(), filters)
			}
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().BoolVar(&estimate, "estimate", false, "reescala o agregado base para --days dias")
	return cmd
}

func newTrendsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Tendências de mercado por categoria",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, filters, err := opts.build()
			if err != nil {
				return err
			}

			trends, err := service.GetMarketTrends(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), trends)
		},
	}
}

func newItemsCmd(opts *options) *cobra.Command {
	var category string
	itemFilters := domain.DefaultItemFilters()

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Peças com risco e giro, até 100 por consulta",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, filters, err := opts.build()
			if err != nil {
				return err
			}

			if category != "" {
				itemFilters.Category = domain.NormalizeCategory(category)
			}

			response, err := service.GetInventoryItems(cmd.Context(), filters, itemFilters)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filtra por categoria")
	cmd.Flags().Float64Var(&itemFilters.RiskMin, "risk-min", itemFilters.RiskMin, "pontuação de risco mínima")
	cmd.Flags().Float64Var(&itemFilters.RiskMax, "risk-max", itemFilters.RiskMax, "pontuação de risco máxima")
	return cmd
}

func newReportCmd(opts *options) *cobra.Command {
	var (
		out      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de estoque em xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, filters, err := opts.build()
			if err != nil {
				return err
			}

			content, err := reporting.NewService(service).InventoryWorkbook(cmd.Context(), filters, category)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, content, 0o644); err != nil {
				return fmt.Errorf("erro ao gravar %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Relatório gravado em %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "inventory.xlsx", "arquivo de saída")
	cmd.Flags().StringVar(&category, "category", "", "restringe o relatório a uma categoria")
	return cmd
}

// build monta o serviço de insights sobre o CSV informado, sem banco de dados
func (o *options) build() (insighting.InventoryInsighter, *domain.InsightFilters, error) {
	cfg := &config.Config{
		Ledger: config.Ledger{
			CSVPath:        o.file,
			CSVURL:         o.url,
			Delimiter:      o.delimiter,
			BaseWindowDays: insighting.EstimateBaseWindowDays,
		},
	}

	cache := ledger.NewCache(salesledger.New(cfg), ledger.NewParser(cfg.Ledger.DelimiterRune()))

	var static snapshot.StaticSnapshot
	if o.staticPath != "" {
		static = snapshot.New(o.staticPath)
	}

	filters := &domain.InsightFilters{
		StartDate: strings.TrimSpace(o.start),
		EndDate:   strings.TrimSpace(o.end),
		Days:      o.days,
	}
	if _, err := utils.ParseDate(filters.StartDate); err != nil {
		return nil, nil, fmt.Errorf("--start inválido: %w", err)
	}
	if _, err := utils.ParseDate(filters.EndDate); err != nil {
		return nil, nil, fmt.Errorf("--end inválido: %w", err)
	}

	return insighting.NewService(cfg, cache, nil, static), filters, nil
}

func (o *options) write(w io.Writer, payload any) error {
	if o.output == outputYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(payload)
	}

	_, err := fmt.Fprintln(w, utils.PrettyJson(payload))
	return err
}
