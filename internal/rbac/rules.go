package rbac

// Permissions.
const (
	PermSummary = "attendance:summary"
	PermRecord  = "attendance:record"
	PermList    = "attendance:list"
	PermExport  = "attendance:export"
	PermClear   = "attendance:clear"

	// PermEvents reads the event log.
	PermEvents = "events:read"
)

var knownPerms = []string{PermSummary, PermRecord, PermList, PermExport, PermClear, PermEvents}

// Default policy.
var RolePermissions = map[string][]string{
	"student": {
		PermSummary,
		PermRecord,
	},
	"teacher": {
		PermSummary,
		PermRecord,
		PermList,
		PermExport,
	},
	"admin": {
		"*", // everything
	},
}
