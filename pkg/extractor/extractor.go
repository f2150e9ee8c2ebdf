// Package extractor finds dates, currency amounts, percentages, tax IDs,
// party-role mentions and vocabulary keyword hits in raw edital text. It is
// the only stage that touches the raw text with patterns; every matcher is
// independent and a failed normalization drops the match instead of failing
// the pipeline.
package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

var (
	currencyPattern = regexp.MustCompile(`R\$\s*\d{1,3}(?:\.\d{3})*(?:,\d{2})?|\b\d{1,3}(?:\.\d{3})+,\d{2}\b`)
	percentPattern  = regexp.MustCompile(`\b\d{1,3}(?:[.,]\d{1,2})?\s*%`)
	cnpjPattern     = regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`)
	cpfPattern      = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`)
	numericDate     = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\b`)
	writtenDate     = regexp.MustCompile(`(?i)\b(\d{1,2})º?\s+de\s+(janeiro|fevereiro|março|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)\s+de\s+(\d{4})\b`)
)

// Extractor runs the fixed pattern battery over one document
type Extractor struct{}

// New creates a new Extractor
func New() *Extractor {
	return &Extractor{}
}

// Extract returns every entity found in text, ordered by source offset.
// lang is "por" or "eng" and only changes the day/month preference of
// ambiguous numeric dates. Extract never fails: spans that do not normalize
// are skipped.
func (e *Extractor) Extract(text, lang string) []models.ExtractedEntity {
	lower := vocab.Fold(text)

	var entities []models.ExtractedEntity
	entities = append(entities, e.extractCurrency(text)...)
	entities = append(entities, e.extractPercentages(text)...)
	entities = append(entities, e.extractTaxIDs(text)...)
	entities = append(entities, e.extractDates(text, lang)...)
	entities = append(entities, e.extractPartyRoles(lower, text)...)
	entities = append(entities, e.extractKeywords(lower, text)...)

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Offset < entities[j].Offset
	})
	return entities
}

func (e *Extractor) extractCurrency(text string) []models.ExtractedEntity {
	var out []models.ExtractedEntity
	for _, loc := range currencyPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		amount, ok := ParseCurrency(raw)
		if !ok {
			continue
		}
		out = append(out, models.ExtractedEntity{
			Kind:   models.EntityKindCurrency,
			Value:  FormatAmount(amount),
			Amount: amount,
			Raw:    raw,
			Offset: loc[0],
		})
	}
	return out
}

func (e *Extractor) extractPercentages(text string) []models.ExtractedEntity {
	var out []models.ExtractedEntity
	for _, loc := range percentPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		value, ok := ParsePercent(raw)
		if !ok {
			continue
		}
		out = append(out, models.ExtractedEntity{
			Kind:   models.EntityKindPercentage,
			Value:  FormatAmount(value),
			Amount: value,
			Raw:    raw,
			Offset: loc[0],
		})
	}
	return out
}

func (e *Extractor) extractTaxIDs(text string) []models.ExtractedEntity {
	var out []models.ExtractedEntity
	for _, pattern := range []struct {
		re       *regexp.Regexp
		category string
	}{
		{cnpjPattern, "cnpj"},
		{cpfPattern, "cpf"},
	} {
		for _, loc := range pattern.re.FindAllStringIndex(text, -1) {
			raw := text[loc[0]:loc[1]]
			out = append(out, models.ExtractedEntity{
				Kind:     models.EntityKindTaxID,
				Value:    digitsOnly(raw),
				Category: pattern.category,
				Raw:      raw,
				Offset:   loc[0],
			})
		}
	}
	return out
}

func (e *Extractor) extractDates(text, lang string) []models.ExtractedEntity {
	var out []models.ExtractedEntity

	for _, loc := range numericDate.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		iso, ok := ParseNumericDate(
			text[loc[2]:loc[3]], text[loc[4]:loc[5]], text[loc[6]:loc[7]], lang,
		)
		if !ok {
			continue
		}
		out = append(out, models.ExtractedEntity{
			Kind:   models.EntityKindDate,
			Value:  iso,
			Raw:    raw,
			Offset: loc[0],
		})
	}

	for _, loc := range writtenDate.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		iso, ok := ParseWrittenDate(
			text[loc[2]:loc[3]], text[loc[4]:loc[5]], text[loc[6]:loc[7]],
		)
		if !ok {
			continue
		}
		out = append(out, models.ExtractedEntity{
			Kind:   models.EntityKindDate,
			Value:  iso,
			Raw:    raw,
			Offset: loc[0],
		})
	}

	return out
}

func (e *Extractor) extractPartyRoles(lower, text string) []models.ExtractedEntity {
	var out []models.ExtractedEntity
	for _, role := range models.NotificationRoles {
		for _, term := range vocab.RoleTerms[role] {
			for _, offset := range findAll(lower, term) {
				out = append(out, models.ExtractedEntity{
					Kind:     models.EntityKindPartyRole,
					Value:    term,
					Category: "role." + string(role),
					Raw:      text[offset : offset+len(term)],
					Offset:   offset,
				})
			}
		}
	}
	return out
}

// keywordTable binds a vocabulary list to the category its hits carry
type keywordTable struct {
	category string
	terms    []string
}

// tables is built once, in a fixed order, so extraction output is
// deterministic for a given text. Map-backed vocabularies are walked by
// sorted key.
var tables = buildKeywordTables()

func buildKeywordTables() []keywordTable {
	out := []keywordTable{
		{category: "publication.gazette", terms: vocab.GazetteTerms},
		{category: "publication.newspaper", terms: vocab.NewspaperTerms},
		{category: "notification_verb", terms: vocab.NotificationVerbs},
	}
	for _, t := range vocab.JudicialIndicators {
		out = append(out, keywordTable{category: "judicial", terms: []string{t.Text}})
	}
	for _, t := range vocab.ExtrajudicialIndicators {
		out = append(out, keywordTable{category: "extrajudicial", terms: []string{t.Text}})
	}
	for _, cat := range sortedKeys(vocab.OccupancyTerms) {
		out = append(out, keywordTable{category: "occupancy." + cat, terms: vocab.OccupancyTerms[cat]})
	}
	for _, cat := range sortedKeys(vocab.RestrictionTerms) {
		out = append(out, keywordTable{category: "restriction." + cat, terms: vocab.RestrictionTerms[cat]})
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Extractor) extractKeywords(lower, text string) []models.ExtractedEntity {
	var out []models.ExtractedEntity
	for _, table := range tables {
		for _, term := range table.terms {
			for _, offset := range findAll(lower, term) {
				out = append(out, models.ExtractedEntity{
					Kind:     models.EntityKindKeywordHit,
					Value:    term,
					Category: table.category,
					Raw:      text[offset : offset+len(term)],
					Offset:   offset,
				})
			}
		}
	}
	return out
}

// findAll returns every byte offset of term in s
func findAll(s, term string) []int {
	var offsets []int
	start := 0
	for {
		idx := strings.Index(s[start:], term)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, start+idx)
		start += idx + len(term)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
