package queryparams

// ListParams са параметрите на листинга на шаблони (?limit&skip&type).
type ListParams struct {
	Limit int    `query:"limit"`
	Skip  int    `query:"skip"`
	Type  string `query:"type"`
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Validate нормализира limit/skip в допустимите граници.
func (p *ListParams) Validate() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// CurrentPage изчислява номера на текущата страница (от 1).
func (p ListParams) CurrentPage() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Skip/p.Limit + 1
}

// PaginatedResult е общият отговор на листинг заявка.
type PaginatedResult struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	CurrentPage int         `json:"currentPage"`
	PageSize    int         `json:"pageSize"`
}
