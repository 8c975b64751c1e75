// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal validates submissions and derives their milestone dates.
package journal

import (
	"fmt"
	"time"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

const (
	// ReceivedFormat is the ISO layout a caller submits.
	ReceivedFormat = "2006-01-02"

	// MilestoneFormat is the DD-Mon-YYYY layout stored on the record.
	MilestoneFormat = "02-Jan-2006"
)

// addDays steps forward from start by the given day count. With weekdayOnly
// set, only Mon-Fri count toward the total. Otherwise calendar days are added
// and a result landing on a weekend rolls forward to Monday.
func addDays(start time.Time, days int, weekdayOnly bool) time.Time {
	cur := start
	if weekdayOnly {
		added := 0
		for added < days {
			cur = cur.AddDate(0, 0, 1)
			if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
				added++
			}
		}
		return cur
	}
	cur = cur.AddDate(0, 0, days)
	for wd := cur.Weekday(); wd == time.Saturday || wd == time.Sunday; wd = cur.Weekday() {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}

// ComputeMilestones derives editorAssigned, reviewed, revised and published
// from the received date and the brand's day-counting policy, and reformats
// received to DD-Mon-YYYY. Each milestone offset is cumulative from received,
// not from the previous milestone.
func ComputeMilestones(rec *types.SubmissionRecord, p brand.Profile) error {
	received, err := time.Parse(ReceivedFormat, rec.Received)
	if err != nil {
		return fmt.Errorf("parsing received date %q: %w", rec.Received, err)
	}

	total := 0
	dates := make([]string, 0, len(p.Offsets))
	for _, off := range p.Offsets {
		total += off
		dates = append(dates, addDays(received, total, p.WeekdayOnly).Format(MilestoneFormat))
	}

	rec.EditorAssigned = dates[0]
	rec.Reviewed = dates[1]
	rec.Revised = dates[2]
	rec.Published = dates[3]
	rec.Received = received.Format(MilestoneFormat)
	return nil
}
