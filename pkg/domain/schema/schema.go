package schema

import (
	"embed"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Get returns the BigQuery schema of a logical table. The schema files are
// embedded in the binary; an unknown table name is an error.
func Get(table types.LogicalTable) (bigquery.Schema, error) {
	raw, err := schemaFiles.ReadFile(fmt.Sprintf("%s.schema.json", table))
	if err != nil {
		return nil, goerr.New("unrecognized table name", goerr.V("table", table))
	}

	s, err := bigquery.SchemaFromJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse schema file", goerr.V("table", table))
	}

	return s, nil
}
