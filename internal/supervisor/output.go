package supervisor

import (
	"regexp"
	"strings"
)

var (
	destinationRe = regexp.MustCompile(`\[download\] Destination: (.+)`)
	alreadyRe     = regexp.MustCompile(`\[download\] (.+) has already been downloaded`)
)

// Outcome accumulates the two scraped signals a downloader's output
// can carry (spec §4.8): the destination path, and whether the file
// was already present.
type Outcome struct {
	Destination       string
	AlreadyDownloaded bool
}

// scanLine feeds a single line of stdout/stderr into out. Isolated
// from Supervisor.Run so alternative downloaders can supply their own
// parser without touching process-management logic (spec §9).
func scanLine(line string, out *Outcome) {
	if m := alreadyRe.FindStringSubmatch(line); m != nil {
		out.AlreadyDownloaded = true
		out.Destination = strings.TrimSpace(m[1])
		return
	}
	if m := destinationRe.FindStringSubmatch(line); m != nil {
		out.Destination = strings.TrimSpace(m[1])
	}
}
