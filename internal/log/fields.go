// Package log is a thin slog wrapper with component tagging and the field
// names shared across the application.
package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldBackend     = "backend"
	FieldPath        = "path"
	FieldRows        = "rows"
	FieldRowsDropped = "rows_dropped"
	FieldDate        = "date"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentStore  = "store"
	ComponentChart  = "chart"
	ComponentMenu   = "menu"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpAppend  = "append"
	OpFilter  = "filter"
	OpSummary = "summary"
	OpReport  = "report"
	OpRender  = "render"
	OpStartup = "startup"
)
