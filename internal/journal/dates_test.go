// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"testing"
	"time"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

func TestComputeMilestonesCalendar(t *testing.T) {
	// 2024-01-15 is a Monday, so none of the cumulative offsets
	// (2, 16, 21, 28) land on a weekend.
	rec := types.SubmissionRecord{Received: "2024-01-15", BrandName: brand.Hilaris}
	if err := ComputeMilestones(&rec, brand.Lookup(rec.BrandName)); err != nil {
		t.Fatal(err)
	}
	want := types.SubmissionRecord{
		Received:       "15-Jan-2024",
		EditorAssigned: "17-Jan-2024",
		Reviewed:       "31-Jan-2024",
		Revised:        "05-Feb-2024",
		Published:      "12-Feb-2024",
	}
	if rec.Received != want.Received {
		t.Errorf("received = %q, want %q", rec.Received, want.Received)
	}
	if rec.EditorAssigned != want.EditorAssigned {
		t.Errorf("editorAssigned = %q, want %q", rec.EditorAssigned, want.EditorAssigned)
	}
	if rec.Reviewed != want.Reviewed {
		t.Errorf("reviewed = %q, want %q", rec.Reviewed, want.Reviewed)
	}
	if rec.Revised != want.Revised {
		t.Errorf("revised = %q, want %q", rec.Revised, want.Revised)
	}
	if rec.Published != want.Published {
		t.Errorf("published = %q, want %q", rec.Published, want.Published)
	}
}

func TestComputeMilestonesWeekendRollover(t *testing.T) {
	// 2024-01-18 is a Thursday; +2 calendar days is Saturday, which must
	// roll forward to Monday the 22nd.
	rec := types.SubmissionRecord{Received: "2024-01-18", BrandName: brand.Omics}
	if err := ComputeMilestones(&rec, brand.Lookup(rec.BrandName)); err != nil {
		t.Fatal(err)
	}
	if rec.EditorAssigned != "22-Jan-2024" {
		t.Errorf("editorAssigned = %q, want 22-Jan-2024", rec.EditorAssigned)
	}
}

func TestComputeMilestonesWeekdayOnly(t *testing.T) {
	// alliedAcademy counts Mon-Fri only, cumulative offsets 2, 16, 23, 30
	// from Monday 2024-01-15.
	rec := types.SubmissionRecord{Received: "2024-01-15", BrandName: brand.AlliedAcademy}
	if err := ComputeMilestones(&rec, brand.Lookup(rec.BrandName)); err != nil {
		t.Fatal(err)
	}
	cases := []struct{ name, got, want string }{
		{"editorAssigned", rec.EditorAssigned, "17-Jan-2024"},
		{"reviewed", rec.Reviewed, "06-Feb-2024"},
		{"revised", rec.Revised, "15-Feb-2024"},
		{"published", rec.Published, "26-Feb-2024"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestComputeMilestonesNeverOnWeekend(t *testing.T) {
	// Sweep a month of received dates across every brand; no derived
	// milestone may land on a Saturday or Sunday.
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range brand.Names() {
		for d := 0; d < 31; d++ {
			rec := types.SubmissionRecord{
				Received:  start.AddDate(0, 0, d).Format(ReceivedFormat),
				BrandName: name,
			}
			if err := ComputeMilestones(&rec, brand.Lookup(name)); err != nil {
				t.Fatal(err)
			}
			for _, ds := range []string{rec.EditorAssigned, rec.Reviewed, rec.Revised, rec.Published} {
				parsed, err := time.Parse(MilestoneFormat, ds)
				if err != nil {
					t.Fatalf("unparseable milestone %q: %v", ds, err)
				}
				if wd := parsed.Weekday(); wd == time.Saturday || wd == time.Sunday {
					t.Errorf("%s received %s: milestone %s lands on %s", name, rec.Received, ds, wd)
				}
			}
		}
	}
}

func TestComputeMilestonesOrdering(t *testing.T) {
	for _, name := range brand.Names() {
		rec := types.SubmissionRecord{Received: "2025-07-04", BrandName: name}
		if err := ComputeMilestones(&rec, brand.Lookup(name)); err != nil {
			t.Fatal(err)
		}
		prev, _ := time.Parse(MilestoneFormat, rec.Received)
		for _, ds := range []string{rec.EditorAssigned, rec.Reviewed, rec.Revised, rec.Published} {
			cur, err := time.Parse(MilestoneFormat, ds)
			if err != nil {
				t.Fatal(err)
			}
			if !cur.After(prev) {
				t.Errorf("%s: milestone %s does not advance past %s", name, ds, prev.Format(MilestoneFormat))
			}
			prev = cur
		}
	}
}

func TestComputeMilestonesBadReceived(t *testing.T) {
	for _, received := range []string{"", "15-Jan-2024", "2024/01/15", "not a date"} {
		rec := types.SubmissionRecord{Received: received}
		if err := ComputeMilestones(&rec, brand.Lookup(brand.Hilaris)); err == nil {
			t.Errorf("received %q: expected error", received)
		}
	}
}
