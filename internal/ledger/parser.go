package ledger

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

// Colunas obrigatórias do cabeçalho do livro de vendas
const (
	ColumnDate     = "voucher_date"
	ColumnItemID   = "label_no"
	ColumnCategory = "category"
	ColumnValue    = "value"
)

const dateLayout = "2006-01-02"

const utf8BOM = "\ufeff"

// ParseStats resume uma execução do parser
type ParseStats struct {
	Lines   int `json:"lines"`
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
	// MissingColumns lista as colunas obrigatórias ausentes no cabeçalho
	MissingColumns []string `json:"missing_columns,omitempty"`
}

type Parser struct {
	Delimiter rune
}

func NewParser(delimiter rune) *Parser {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Parser{Delimiter: delimiter}
}

// Parse converte o texto delimitado em registros de venda.
// Linhas malformadas são descartadas sem erro; o único erro possível é de leitura.
func (p *Parser) Parse(r io.Reader) ([]domain.SalesRecord, ParseStats, error) {
	stats := ParseStats{}
	records := make([]domain.SalesRecord, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		header  []string
		columns map[string]int
	)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if header == nil {
			// Exportações do Excel costumam começar com BOM UTF-8
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if header == nil {
			header = p.SplitLine(line)
			columns = indexColumns(header)
			stats.MissingColumns = missingColumns(columns)
			continue
		}

		stats.Lines++

		if len(stats.MissingColumns) > 0 {
			stats.Dropped++
			continue
		}

		record, ok := p.buildRecord(p.SplitLine(line), len(header), columns)
		if !ok {
			stats.Dropped++
			continue
		}

		records = append(records, record)
		stats.Kept++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	if len(stats.MissingColumns) > 0 {
		logrus.WithField("ledger_missing_columns", stats.MissingColumns).
			Warn("ledger: cabeçalho sem colunas obrigatórias, nenhum registro carregado")
	}

	logrus.WithFields(logrus.Fields{
		"ledger_lines":   stats.Lines,
		"ledger_kept":    stats.Kept,
		"ledger_dropped": stats.Dropped,
	}).Info("ledger: parse concluído")

	return records, stats, nil
}

func (p *Parser) buildRecord(fields []string, headerLen int, columns map[string]int) (domain.SalesRecord, bool) {
	if len(fields) < headerLen {
		return domain.SalesRecord{}, false
	}

	date := fields[columns[ColumnDate]]
	itemID := fields[columns[ColumnItemID]]
	category := fields[columns[ColumnCategory]]
	rawValue := fields[columns[ColumnValue]]

	if date == "" || itemID == "" || category == "" || rawValue == "" {
		return domain.SalesRecord{}, false
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.SalesRecord{}, false
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return domain.SalesRecord{}, false
	}

	return domain.SalesRecord{
		TransactionDate: date,
		ItemID:          itemID,
		Category:        domain.NormalizeCategory(category),
		Value:           value,
	}, true
}

// SplitLine separa uma linha respeitando aspas duplas. A aspa alterna o modo
// "dentro de aspas" e nunca é copiada; o delimitador dentro de aspas é literal.
func (p *Parser) SplitLine(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == p.Delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(name)
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func missingColumns(columns map[string]int) []string {
	var missing []string
	for _, name := range []string{ColumnDate, ColumnItemID, ColumnCategory, ColumnValue} {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
