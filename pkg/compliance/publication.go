// Package compliance checks the publication deadline and the CPC Art. 889
// notification roll of an edital. Both checks work only from extracted
// entities; absence of evidence is always cannot_determine, never
// non_compliant, except for a deadline actually computed and violated.
package compliance

import (
	"sort"
	"strings"
	"time"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// contextWindow is how far back from a date offset the checker looks for a
// publication or auction context phrase, in bytes. Context phrases precede
// their date in edital prose ("publicado em", "será realizado em").
const contextWindow = 80

// Checker runs both compliance sub-checks over one document
type Checker struct{}

// New creates a new Checker
func New() *Checker {
	return &Checker{}
}

// Check runs the publication and notification checks and bundles them
func (c *Checker) Check(text string, entities []models.ExtractedEntity) models.ComplianceResult {
	lower := vocab.Fold(text)
	notifications := c.checkNotifications(entities)
	return models.ComplianceResult{
		Publication:   c.checkPublication(lower, entities),
		Notifications: notifications,
		Art889Status:  aggregateArt889(notifications),
	}
}

func (c *Checker) checkPublication(lower string, entities []models.ExtractedEntity) models.PublicationCompliance {
	out := models.PublicationCompliance{
		PublicationDates: []string{},
		AuctionDates:     []string{},
	}

	for _, ent := range entities {
		if ent.Kind != models.EntityKindKeywordHit {
			continue
		}
		switch ent.Category {
		case "publication.gazette":
			out.DiarioOficialMentioned = true
		case "publication.newspaper":
			out.NewspaperMentioned = true
		}
	}

	for _, ent := range entities {
		if ent.Kind != models.EntityKindDate {
			continue
		}
		switch classifyDate(lower, ent.Offset) {
		case dateRolePublication:
			out.PublicationDates = append(out.PublicationDates, ent.Value)
		case dateRoleAuction:
			out.AuctionDates = append(out.AuctionDates, ent.Value)
		}
	}
	out.PublicationDates = sortedUnique(out.PublicationDates)
	out.AuctionDates = sortedUnique(out.AuctionDates)

	if len(out.PublicationDates) == 0 || len(out.AuctionDates) == 0 {
		out.Status = models.ComplianceStatusCannotDetermine
		return out
	}

	// The deadline runs from the latest publication to the earliest auction:
	// the narrowest interval the document supports.
	pub, okPub := parseISO(out.PublicationDates[len(out.PublicationDates)-1])
	auction, okAuc := parseISO(out.AuctionDates[0])
	if !okPub || !okAuc {
		out.Status = models.ComplianceStatusCannotDetermine
		return out
	}

	days := BusinessDaysBetween(pub, auction)
	meets := days >= StatutoryMinBusinessDays
	out.DaysBetween = &days
	out.MeetsDeadline = &meets

	switch {
	case !meets:
		out.Status = models.ComplianceStatusNonCompliant
	case out.DiarioOficialMentioned:
		out.Status = models.ComplianceStatusCompliant
	default:
		out.Status = models.ComplianceStatusPartiallyCompliant
	}
	return out
}

type dateRole int

const (
	dateRoleNone dateRole = iota
	dateRolePublication
	dateRoleAuction
)

// classifyDate decides whether the date at offset is a publication date, an
// auction date, or neither, by the nearest context phrase in the preceding
// window. Publication wins ties so an ambiguous date never shortens the
// deadline.
func classifyDate(lower string, offset int) dateRole {
	lo := offset - contextWindow
	if lo < 0 {
		lo = 0
	}
	window := lower[lo:offset]

	pubDist := nearestTerm(window, vocab.PublicationContext)
	aucDist := nearestTerm(window, vocab.AuctionContext)
	switch {
	case pubDist < 0 && aucDist < 0:
		return dateRoleNone
	case aucDist < 0 || (pubDist >= 0 && pubDist <= aucDist):
		return dateRolePublication
	default:
		return dateRoleAuction
	}
}

// nearestTerm returns the distance from the end of window back to the end of
// the last occurrence of any term, or -1 when none occurs.
func nearestTerm(window string, terms []string) int {
	best := -1
	for _, term := range terms {
		idx := strings.LastIndex(window, term)
		if idx < 0 {
			continue
		}
		d := len(window) - (idx + len(term))
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func parseISO(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func sortedUnique(in []string) []string {
	sort.Strings(in)
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}
