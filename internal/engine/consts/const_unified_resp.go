package consts

// keys used by the unified response middleware via fiber locals
const (
	DETAIL    = "detail"
	OPERATION = "operation"
)
