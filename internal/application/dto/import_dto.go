package dto

// Acciones posibles por fila en una importación de Excel.
const (
	ImportActionCreated         = "created"
	ImportActionUpdated         = "updated"
	ImportActionNeedsAdjustment = "needs_adjustment"
	ImportActionError           = "error"
)

// ImportRowResult resultado de una fila del archivo importado.
type ImportRowResult struct {
	Row      int    `json:"row"`
	ItemName string `json:"item_name,omitempty"`
	Action   string `json:"action"`
	Message  string `json:"message,omitempty"`
}

// ImportResultResponse resultado de la importación completa.
type ImportResultResponse struct {
	Created         int               `json:"created"`
	Updated         int               `json:"updated"`
	NeedsAdjustment int               `json:"needs_adjustment"`
	Errors          int               `json:"errors"`
	Rows            []ImportRowResult `json:"rows"`
}
