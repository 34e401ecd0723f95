package types

import "github.com/m-mizutani/goerr/v2"

// LogicalTable is one of the vendor's per-export data models, encoded in
// the exported file names.
type LogicalTable string

const (
	TableEventParameters LogicalTable = "eventparameters"
	TableEvents          LogicalTable = "events"
	TableExperiments     LogicalTable = "experiments"
	TableSessions        LogicalTable = "sessions"
	TableStates          LogicalTable = "states"
	TableUserAttributes  LogicalTable = "userattributes"

	// TableMessages is not part of the file export; it is loaded from the
	// vendor's message catalog API.
	TableMessages LogicalTable = "messages"
)

// LogicalTables lists the exportable data models in stable order.
func LogicalTables() []LogicalTable {
	return []LogicalTable{
		TableEventParameters,
		TableEvents,
		TableExperiments,
		TableSessions,
		TableStates,
		TableUserAttributes,
	}
}

// ParseLogicalTable maps the logical segment of an exported file name to a
// data model. The vendor emits an empty segment for the default sessions
// model.
func ParseLogicalTable(s string) (LogicalTable, error) {
	if s == "" {
		return TableSessions, nil
	}
	for _, tbl := range LogicalTables() {
		if s == string(tbl) {
			return tbl, nil
		}
	}
	return "", goerr.New("unrecognized table name", goerr.V("name", s))
}

func (x LogicalTable) String() string { return string(x) }
