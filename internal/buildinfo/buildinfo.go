// Package buildinfo holds version data stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/jobpilot/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/jobpilot/internal/buildinfo.buildDate=$(date -u +%F) \
//	  -X github.com/dmitrijs2005/jobpilot/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion = notAvailable
	buildDate    = notAvailable
	buildCommit  = notAvailable
)

func value(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes the version banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", value(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", value(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", value(buildCommit))
}
