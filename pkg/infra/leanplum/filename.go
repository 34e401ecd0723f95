package leanplum

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

// Export file names end with "output<logical>-<seq>", e.g.
// "export-2950-outputsessions-0". An empty logical segment denotes the
// default sessions model.
var ptnExportFileName = regexp.MustCompile(`output([a-z]*)-(\d+)$`)

func parseExportFileName(fileURL string) (types.LogicalTable, int, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", 0, goerr.Wrap(err, "invalid export file URL", goerr.V("url", fileURL))
	}

	base := u.Path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}

	m := ptnExportFileName.FindStringSubmatch(base)
	if m == nil {
		return "", 0, goerr.New("unexpected export file name", goerr.V("name", base))
	}

	table, err := types.ParseLogicalTable(m[1])
	if err != nil {
		return "", 0, err
	}

	seq, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, goerr.Wrap(err, "invalid export file sequence", goerr.V("name", base))
	}

	return table, seq, nil
}

// isAuthErrorMessage detects credential failures reported in-band by the
// vendor API, which responds 200 with an error body for most failures.
func isAuthErrorMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, ptn := range []string{"invalid access key", "invalid client key", "unauthorized", "permission denied"} {
		if strings.Contains(lower, ptn) {
			return true
		}
	}
	return false
}
