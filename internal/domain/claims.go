package domain

import m "github.com/mouse-blink/classpick/internal/model"

// AssignClaims gives every artifact matched by more than one unit to the unit
// with the longest stem. With units Foo and Foo$Bar in one package,
// Foo$Bar$1.class belongs to Foo$Bar only. Order within each match is kept.
func AssignClaims(matches []m.ArtifactMatch) []m.ArtifactMatch {
	owner := make(map[m.Path]int)

	for i, match := range matches {
		for _, artifact := range match.Artifacts {
			current, claimed := owner[artifact]
			if !claimed || len(match.Unit.Stem()) > len(matches[current].Unit.Stem()) {
				owner[artifact] = i
			}
		}
	}

	assigned := make([]m.ArtifactMatch, 0, len(matches))

	for i, match := range matches {
		kept := make([]m.Path, 0, len(match.Artifacts))

		for _, artifact := range match.Artifacts {
			if owner[artifact] == i {
				kept = append(kept, artifact)
			}
		}

		assigned = append(assigned, m.ArtifactMatch{Unit: match.Unit, Artifacts: kept})
	}

	return assigned
}
