package utils

import (
	"testing"
	"time"

	"contesthub/models"
)

func sampleCompetitions(now time.Time) []models.Competition {
	return []models.Competition{
		{ID: "1", Title: "Street Photography Challenge", Category: "Photography", Difficulty: "Beginner", PrizeValue: "$5,000 USD", Status: models.StatusActive, Deadline: now.Add(30 * 24 * time.Hour)},
		{ID: "2", Title: "Logo Design Sprint", Category: "Design", Difficulty: "Intermediate", PrizeValue: "$1,200", Status: models.StatusActive, Deadline: now.Add(10 * 24 * time.Hour)},
		{ID: "3", Title: "Short Story Contest", Category: "Writing", Difficulty: "Advanced", PrizeValue: "Publication deal", Status: models.StatusActive, Deadline: now.Add(60 * 24 * time.Hour)},
		{ID: "4", Title: "Retro Photo Restoration", Category: "Photography", Difficulty: "Expert", PrizeValue: "$800", Status: models.StatusActive, Deadline: now.Add(-24 * time.Hour)},
		{ID: "5", Title: "Archived Art Jam", Category: "Art", Difficulty: "Beginner", PrizeValue: "$300", Status: models.StatusArchived, Deadline: now.Add(5 * 24 * time.Hour)},
	}
}

func ids(list []models.Competition) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func TestApply_EmptyFilterKeepsEverything(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	got := CompetitionFilter{}.Apply(list, now)
	if len(got) != len(list) {
		t.Fatalf("expected %d competitions, got %d", len(list), len(got))
	}
	for i := range got {
		if got[i].ID != list[i].ID {
			t.Errorf("order changed at index %d: expected %s, got %s", i, list[i].ID, got[i].ID)
		}
	}
}

func TestApply_ResultIsStableSubsequence(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	got := CompetitionFilter{Category: "Photography"}.Apply(list, now)
	want := []string{"1", "4"}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)
	f := CompetitionFilter{Status: DisplayActive, MinPrize: 500}

	once := f.Apply(list, now)
	twice := f.Apply(once, now)

	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %v vs %v", ids(once), ids(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second application changed the result: %v vs %v", ids(once), ids(twice))
		}
	}
}

func TestApply_TermIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	lower := CompetitionFilter{Term: "photo"}.Apply(list, now)
	upper := CompetitionFilter{Term: "PHOTO"}.Apply(list, now)

	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("expected 2 matches for both cases, got %d and %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID {
			t.Errorf("case changed the match set: %v vs %v", ids(lower), ids(upper))
		}
	}
}

func TestApply_StatusFiltersOnDerivedStatus(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	ended := CompetitionFilter{Status: DisplayEnded}.Apply(list, now)
	if len(ended) != 1 || ended[0].ID != "4" {
		t.Fatalf("expected only the past-deadline competition, got %v", ids(ended))
	}

	archived := CompetitionFilter{Status: DisplayArchived}.Apply(list, now)
	if len(archived) != 1 || archived[0].ID != "5" {
		t.Fatalf("expected only the archived competition, got %v", ids(archived))
	}

	all := CompetitionFilter{Status: "all"}.Apply(list, now)
	if len(all) != len(list) {
		t.Fatalf(`status "all" should pass everything through, got %v`, ids(all))
	}
}

func TestApply_PrizeRangeExcludesDigitlessPrizes(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	// "Publication deal" parses as 0 and falls below any positive minimum
	got := CompetitionFilter{MinPrize: 1}.Apply(list, now)
	for _, c := range got {
		if c.ID == "3" {
			t.Fatalf("digitless prize should be excluded by a positive minimum, got %v", ids(got))
		}
	}
}

func TestApply_PrizeRangeBounds(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	got := CompetitionFilter{MinPrize: 500, MaxPrize: 2000}.Apply(list, now)
	want := []string{"2", "4"}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestApply_EndDateCutoff(t *testing.T) {
	now := time.Now()
	list := sampleCompetitions(now)

	cutoff := now.Add(15 * 24 * time.Hour)
	got := CompetitionFilter{EndDate: &cutoff}.Apply(list, now)
	for _, c := range got {
		if c.Deadline.After(cutoff) {
			t.Errorf("competition %s has deadline after the cutoff", c.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 competitions within the cutoff, got %v", ids(got))
	}
}

func TestExtractPrizeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"$5,000 USD", 5000},
		{"1200", 1200},
		{"Publication deal", 0},
		{"", 0},
		{"Up to $2,500 in gear", 2500},
	}
	for _, tc := range cases {
		if got := ExtractPrizeNumber(tc.in); got != tc.want {
			t.Errorf("ExtractPrizeNumber(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
