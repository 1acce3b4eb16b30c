package utils

import (
	"strconv"
	"strings"
	"time"

	"contesthub/models"
)

// CompetitionFilter holds the narrowing criteria applied to a competition list.
// Zero values ("", "all", "any", 0, nil) are pass-throughs, not exclusions.
type CompetitionFilter struct {
	Term       string     // case-insensitive substring match against the title
	Status     string     // matched against the derived display status
	Category   string
	Difficulty string
	MinPrize   int
	MaxPrize   int
	EndDate    *time.Time // keep competitions whose deadline is on or before this
}

// Apply filters the list with every criterion ANDed together. The result is a
// stable subsequence of the input; no re-sorting happens here.
func (f CompetitionFilter) Apply(list []models.Competition, now time.Time) []models.Competition {
	filtered := make([]models.Competition, 0, len(list))
	for _, c := range list {
		if !f.matches(c, now) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func (f CompetitionFilter) matches(c models.Competition, now time.Time) bool {
	if f.Term != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Term)) {
		return false
	}
	if f.Status != "" && f.Status != "all" && DisplayStatus(c, now) != f.Status {
		return false
	}
	if f.Category != "" && f.Category != "all" && c.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != "any" && f.Difficulty != "all" && c.Difficulty != f.Difficulty {
		return false
	}
	if f.MinPrize > 0 || f.MaxPrize > 0 {
		prize := ExtractPrizeNumber(c.PrizeValue)
		if f.MinPrize > 0 && prize < f.MinPrize {
			return false
		}
		if f.MaxPrize > 0 && prize > f.MaxPrize {
			return false
		}
	}
	if f.EndDate != nil && c.Deadline.After(*f.EndDate) {
		return false
	}
	return true
}

// ExtractPrizeNumber pulls the digits out of a free-text prize string such as
// "$5,000 USD". A string with no digits compares as 0.
func ExtractPrizeNumber(prizeValue string) int {
	var digits strings.Builder
	for _, r := range prizeValue {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
