package domain

import (
	"testing"

	m "github.com/mouse-blink/classpick/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAssignClaims_LongestStemWins(t *testing.T) {
	matches := []m.ArtifactMatch{
		{
			Unit:      m.SourceUnit{Rel: "pkg/Foo.java"},
			Artifacts: []m.Path{"/c/pkg/Foo$1.class", "/c/pkg/Foo$Bar$1.class", "/c/pkg/Foo$Bar.class", "/c/pkg/Foo.class"},
		},
		{
			Unit:      m.SourceUnit{Rel: "pkg/Foo$Bar.java"},
			Artifacts: []m.Path{"/c/pkg/Foo$Bar$1.class", "/c/pkg/Foo$Bar.class"},
		},
	}

	got := AssignClaims(matches)

	assert.Equal(t, []m.Path{"/c/pkg/Foo$1.class", "/c/pkg/Foo.class"}, got[0].Artifacts)
	assert.Equal(t, []m.Path{"/c/pkg/Foo$Bar$1.class", "/c/pkg/Foo$Bar.class"}, got[1].Artifacts)
	assert.Equal(t, matches[1].Unit, got[1].Unit)
}

func TestAssignClaims_OrderIndependent(t *testing.T) {
	matches := []m.ArtifactMatch{
		{
			Unit:      m.SourceUnit{Rel: "Foo$Bar.java"},
			Artifacts: []m.Path{"/c/Foo$Bar.class"},
		},
		{
			Unit:      m.SourceUnit{Rel: "Foo.java"},
			Artifacts: []m.Path{"/c/Foo$Bar.class", "/c/Foo.class"},
		},
	}

	got := AssignClaims(matches)

	assert.Equal(t, []m.Path{"/c/Foo$Bar.class"}, got[0].Artifacts)
	assert.Equal(t, []m.Path{"/c/Foo.class"}, got[1].Artifacts)
}

func TestAssignClaims_DisjointUnchanged(t *testing.T) {
	matches := []m.ArtifactMatch{
		{Unit: m.SourceUnit{Rel: "a/A.java"}, Artifacts: []m.Path{"/c/a/A.class", "/c/a/A$1.class"}},
		{Unit: m.SourceUnit{Rel: "b/B.java"}, Artifacts: []m.Path{"/c/b/B.class"}},
	}

	assert.Equal(t, matches, AssignClaims(matches))
}
