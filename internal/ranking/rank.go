// Package ranking scores extracted sections against a persona/job query and
// selects the most relevant ones across a document collection.
package ranking

import (
	"sort"

	"github.com/jonathan/outline-extractor/internal/types"
)

// DefaultTopN is the number of sections selected per collection run when the
// caller does not configure one.
const DefaultTopN = 5

// DocumentSections bundles one document's outline with its lines so section
// context and refined text can be read back from the page.
type DocumentSections struct {
	Document string
	Outline  types.Outline
	Lines    []types.Line
}

// scoredSection is a ranking candidate before rank assignment.
type scoredSection struct {
	section  types.Section
	refined  string
	score    float64
	docOrder int
}

// RankSections scores every outline entry across the collection against the
// persona/job query and returns the top-N sections with contiguous
// importance ranks 1..K, plus the refined text analysis per selected section.
//
// An empty persona and job degrade to level and positional weighting only;
// a query with zero overlap still ranks and returns K sections. Neither is
// an error.
func RankSections(persona, job string, docs []DocumentSections, topN int) ([]types.Section, []types.SubsectionAnalysis) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	terms := ExtractQueryTerms(persona, job)

	var scored []scoredSection
	for docOrder, doc := range docs {
		headingTexts := make(map[string]bool, len(doc.Outline.Entries))
		for _, entry := range doc.Outline.Entries {
			headingTexts[entry.Text] = true
		}

		for _, entry := range doc.Outline.Entries {
			refined := refineText(doc.Lines, entry, headingTexts)

			// The scoring block is the heading plus its body window for context.
			overlap := computeTermOverlap(entry.Text+" "+refined, terms)
			score := termMatchWeight*float64(overlap) +
				levelWeight(entry.Level) +
				pageBonus(entry.Page)

			scored = append(scored, scoredSection{
				section: types.Section{
					Document:     doc.Document,
					SectionTitle: entry.Text,
					PageNumber:   entry.Page,
				},
				refined:  refined,
				score:    score,
				docOrder: docOrder,
			})
		}
	}

	// Sort by score descending; ties favor manifest document order, then
	// earlier pages, keeping the run deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].docOrder != scored[j].docOrder {
			return scored[i].docOrder < scored[j].docOrder
		}
		return scored[i].section.PageNumber < scored[j].section.PageNumber
	})

	k := topN
	if len(scored) < k {
		k = len(scored)
	}

	sections := make([]types.Section, 0, k)
	analyses := make([]types.SubsectionAnalysis, 0, k)
	for i := 0; i < k; i++ {
		s := scored[i]
		s.section.ImportanceRank = i + 1
		sections = append(sections, s.section)
		analyses = append(analyses, types.SubsectionAnalysis{
			Document:    s.section.Document,
			RefinedText: s.refined,
			PageNumber:  s.section.PageNumber,
		})
	}

	return sections, analyses
}
