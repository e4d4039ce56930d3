// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package awscli

import "time"

// windowFormat is the timestamp layout get-metric-statistics and
// get-metric-data accept for --start-time/--end-time.
const windowFormat = "2006-01-02T15:04:05Z"

// TimeRange returns UTC start/end timestamps bounding a metrics query that
// reaches hours back from now.
func TimeRange(hours int) (start string, end string) {
	return timeRangeAt(time.Now().UTC(), hours)
}

func timeRangeAt(now time.Time, hours int) (string, string) {
	from := now.Add(-time.Duration(hours) * time.Hour)
	return from.Format(windowFormat), now.Format(windowFormat)
}
