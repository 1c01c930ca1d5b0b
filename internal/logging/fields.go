package logging

import "log/slog"

// Structured log keys shared across packages.
const (
	FieldService       = "service"
	FieldVersion       = "version"
	FieldProvider      = "provider"
	FieldOperation     = "operation"
	FieldRequestID     = "request_id"
	FieldLeagueID      = "league_id"
	FieldLeagueType    = "league_type"
	FieldUsername      = "username"
	FieldSeason        = "season"
	FieldTablesVersion = "tables_version"
	FieldPath          = "path"
	FieldRoute         = "route"
	FieldMethod        = "method"
	FieldStatusCode    = "status_code"
	FieldCount         = "count"
	FieldDurationMS    = "duration_ms"
	FieldAddr          = "addr"
	FieldError         = "error"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
