package extraction

import "sort"

// mergeCandidates folds every strategy candidate for one field into a single
// Field. The highest-confidence candidate wins value/source/box; everything
// displaced becomes an alternative. The winner is independent of candidate
// input order: ties are broken by source name then raw value, so merging
// [A,B] and [B,A] picks the same winner (only alternative order may differ).
func mergeCandidates(field Field, candidates []Candidate) Field {
	if len(candidates) == 0 {
		return field
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		if ranked[i].Source != ranked[j].Source {
			return ranked[i].Source < ranked[j].Source
		}
		return ranked[i].Raw < ranked[j].Raw
	})

	winner := ranked[0]
	field.Raw = winner.Raw
	field.Value = winner.Value
	field.Confidence = winner.Confidence
	field.Source = winner.Source
	field.Box = winner.Box

	for _, c := range ranked[1:] {
		field.Alternatives = append(field.Alternatives, Alternative{
			Value:      c.Value,
			Raw:        c.Raw,
			Confidence: c.Confidence,
			Source:     c.Source,
		})
	}
	return field
}
