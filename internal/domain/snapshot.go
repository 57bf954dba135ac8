package domain

import "time"

// CategorySnapshot guarda o agregado de categorias de uma janela base,
// usado no modo estimativa quando o livro de vendas não está disponível
type CategorySnapshot struct {
	ID         string            `json:"id"`
	WindowEnd  string            `json:"window_end"`
	WindowDays int               `json:"window_days"`
	Categories []CategoryInsight `json:"categories"`
	CreatedAt  time.Time         `json:"created_at"`
}
