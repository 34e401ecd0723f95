package schema_test

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/schema"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

func TestGet(t *testing.T) {
	t.Run("every logical table has a schema", func(t *testing.T) {
		for _, tbl := range types.LogicalTables() {
			s := gt.R1(schema.Get(tbl)).NoError(t)
			gt.True(t, len(s) > 0)
		}
	})

	t.Run("messages schema is partitioned by load_date", func(t *testing.T) {
		s := gt.R1(schema.Get(types.TableMessages)).NoError(t)
		gt.V(t, s[0].Name).Equal("load_date")
		gt.V(t, s[0].Type).Equal(bigquery.DateFieldType)
		gt.True(t, s[0].Required)
	})

	t.Run("sessions schema keys on sessionId", func(t *testing.T) {
		s := gt.R1(schema.Get(types.TableSessions)).NoError(t)
		gt.V(t, s[0].Name).Equal("sessionId")
		gt.V(t, s[0].Type).Equal(bigquery.IntegerFieldType)
	})

	t.Run("unknown table is an error", func(t *testing.T) {
		_, err := schema.Get(types.LogicalTable("purchases"))
		gt.Error(t, err)
	})
}
