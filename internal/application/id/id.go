// Package id provides identifier generation for job applications.
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generate creates the reference shown to a candidate after applying.
// Format: APP-<jobID>-<unix millis in upper-case base 36>
// Example: APP-3-LR2XK0QF
func Generate(jobID string, now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("APP-%s-%s", jobID, stamp)
}
