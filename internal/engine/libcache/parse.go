package libcache

import (
	"strings"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
)

// bulkRecord is one parsed line of "haxelib list-path" output.
type bulkRecord struct {
	name string
	path string
}

// parseBulkListing parses "name:version:path" records. Malformed lines are
// logged and skipped so one bad record never poisons the whole listing.
func parseBulkListing(lines []string, logger ports.Logger) []bulkRecord {
	records := make([]bulkRecord, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ":")
		if len(fields) < 3 || fields[0] == "" || fields[2] == "" {
			logger.Warn(domain.ErrMalformedListing.Error() + ": " + line)
			continue
		}

		records = append(records, bulkRecord{name: fields[0], path: fields[2]})
	}
	return records
}

// sanitizePaths filters "haxelib path" output down to classpath entries.
// Besides paths, haxelib prints compiler defines ("-D name") and diagnostic
// chatter; none of that belongs on a classpath.
func sanitizePaths(lines []string) []string {
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "-"):
		case strings.HasPrefix(line, "Error:"):
		case strings.HasPrefix(line, "Warning:"):
		default:
			paths = append(paths, line)
		}
	}
	return paths
}
