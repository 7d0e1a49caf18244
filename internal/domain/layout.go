package domain

// Layout names the file conventions of the trees being matched.
type Layout struct {
	SourceExt   string // e.g. ".java"
	ArtifactExt string // e.g. ".class"
	Separator   string // nested-unit separator, e.g. "$"
}

// DefaultLayout returns the Java source/class conventions.
func DefaultLayout() Layout {
	return Layout{
		SourceExt:   ".java",
		ArtifactExt: ".class",
		Separator:   "$",
	}
}

func (l Layout) withDefaults() Layout {
	def := DefaultLayout()

	if l.SourceExt == "" {
		l.SourceExt = def.SourceExt
	}

	if l.ArtifactExt == "" {
		l.ArtifactExt = def.ArtifactExt
	}

	if l.Separator == "" {
		l.Separator = def.Separator
	}

	return l
}
