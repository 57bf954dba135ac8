package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRecords []domain.SalesRecord
		wantStats   ParseStats
	}{
		{
			name: "Linhas válidas com categoria normalizada",
			input: "voucher_date,label_no,category,value\n" +
				"2025-10-01,A1,ring,1500.50\n" +
				"2025-10-02,A2, Bangle ,200\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A1", Category: domain.CategoryRing, Value: 1500.50},
				{TransactionDate: "2025-10-02", ItemID: "A2", Category: domain.CategoryBangle, Value: 200},
			},
			wantStats: ParseStats{Lines: 2, Kept: 2},
		},
		{
			name: "Cabeçalho com BOM UTF-8",
			input: "\ufeffvoucher_date,label_no,category,value\n" +
				"2025-10-01,A1,RING,10\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A1", Category: domain.CategoryRing, Value: 10},
			},
			wantStats: ParseStats{Lines: 1, Kept: 1},
		},
		{
			name: "Delimitador dentro de aspas é literal e aspas não são copiadas",
			input: "voucher_date,label_no,category,value\n" +
				"2025-10-01,\"A,1\",RING,10\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A,1", Category: domain.CategoryRing, Value: 10},
			},
			wantStats: ParseStats{Lines: 1, Kept: 1},
		},
		{
			name: "Colunas em outra ordem e colunas extras",
			input: "value,extra,category,label_no,voucher_date\n" +
				"99.9,x,chain,C7,2025-09-30\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-09-30", ItemID: "C7", Category: domain.CategoryChain, Value: 99.9},
			},
			wantStats: ParseStats{Lines: 1, Kept: 1},
		},
		{
			name: "Linhas malformadas são descartadas",
			input: "voucher_date,label_no,category,value\n" +
				"2025-10-01,A1,RING,abc\n" + // valor não numérico
				"2025-10-01,,RING,10\n" + // campo vazio
				"2025-10-01,A2,RING\n" + // linha curta
				"01/10/2025,A3,RING,10\n" + // data fora do formato
				"2025-10-01,A4,RING,-5\n" + // valor negativo
				"2025-10-01,A5,RING,NaN\n" + // valor não finito
				"2025-10-01,A6,RING,12abc\n" + // número parcial
				"2025-10-01,A7,RING,7\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A7", Category: domain.CategoryRing, Value: 7},
			},
			wantStats: ParseStats{Lines: 8, Kept: 1, Dropped: 7},
		},
		{
			name: "Categoria desconhecida é mantida",
			input: "voucher_date,label_no,category,value\n" +
				"2025-10-01,A1,anklet,10\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A1", Category: "ANKLET", Value: 10},
			},
			wantStats: ParseStats{Lines: 1, Kept: 1},
		},
		{
			name: "Cabeçalho sem coluna obrigatória não gera registros",
			input: "voucher_date,label_no,value\n" +
				"2025-10-01,A1,10\n",
			wantRecords: []domain.SalesRecord{},
			wantStats:   ParseStats{Lines: 1, Dropped: 1, MissingColumns: []string{ColumnCategory}},
		},
		{
			name:        "Entrada vazia",
			input:       "",
			wantRecords: []domain.SalesRecord{},
			wantStats:   ParseStats{},
		},
		{
			name:        "Somente cabeçalho e linhas em branco",
			input:       "voucher_date,label_no,category,value\n\n  \n",
			wantRecords: []domain.SalesRecord{},
			wantStats:   ParseStats{},
		},
		{
			name: "Quebra de linha CRLF",
			input: "voucher_date,label_no,category,value\r\n" +
				"2025-10-01,A1,EARRING,3\r\n",
			wantRecords: []domain.SalesRecord{
				{TransactionDate: "2025-10-01", ItemID: "A1", Category: domain.CategoryEarring, Value: 3},
			},
			wantStats: ParseStats{Lines: 1, Kept: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(',')

			records, stats, err := parser.Parse(strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.wantRecords, records)
			assert.Equal(t, tt.wantStats, stats)
		})
	}
}

func TestParser_Parse_OutrosDelimitadores(t *testing.T) {
	parser := NewParser(';')

	records, _, err := parser.Parse(strings.NewReader(
		"voucher_date;label_no;category;value\n2025-10-01;\"B;2\";pendant;1.5\n",
	))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B;2", records[0].ItemID)
	assert.Equal(t, domain.CategoryPendant, records[0].Category)
}

func TestParser_Parse_Idempotente(t *testing.T) {
	input := "voucher_date,label_no,category,value\n2025-10-01,A1,RING,10\n2025-10-03,A2,CHAIN,20\n"
	parser := NewParser(',')

	first, _, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	second, _, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParser_SplitLine(t *testing.T) {
	parser := NewParser(',')

	assert.Equal(t, []string{"a", "b", "c"}, parser.SplitLine(" a , b ,c "))
	assert.Equal(t, []string{"a,b", "c"}, parser.SplitLine(`"a,b",c`))
	assert.Equal(t, []string{"", ""}, parser.SplitLine(","))
	assert.Equal(t, []string{"ab"}, parser.SplitLine(`a"b`))
}
