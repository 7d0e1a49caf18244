package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		major uint16
		want  string
	}{
		{45, "JDK 1.1"},
		{48, "JDK 1.4"},
		{49, "JDK 5"},
		{50, "JDK 6"},
		{52, "JDK 8"},
		{55, "JDK 11"},
		{61, "JDK 17"},
		{65, "JDK 21"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.major), "major %d", tt.major)
	}
}

func TestLabelFor_CoversTable(t *testing.T) {
	seen := make(map[string]bool)

	for major := uint16(45); major <= 65; major++ {
		label := LabelFor(major)
		assert.NotContains(t, label, "unknown", "major %d", major)
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
}

func TestLabelFor_Unknown(t *testing.T) {
	for _, major := range []uint16{0, 44, 66, 999} {
		label := LabelFor(major)

		assert.Contains(t, label, "unknown")
		for _, known := range jdkLabels {
			assert.NotEqual(t, known, label)
		}
	}

	assert.Equal(t, "unknown JDK version (major: 999)", LabelFor(999))
}

func TestVersionTally(t *testing.T) {
	tally := VersionTally{}
	assert.False(t, tally.Mixed())
	assert.Empty(t, tally.Labels())

	tally.Add("JDK 8", "A.class")
	tally.Add("JDK 8", "A$1.class")
	assert.False(t, tally.Mixed())

	tally.Add("JDK 11", "B.class")
	assert.True(t, tally.Mixed())
	assert.Equal(t, []string{"JDK 11", "JDK 8"}, tally.Labels())
	assert.Equal(t, map[string]int{"JDK 8": 2, "JDK 11": 1}, tally.Counts())
	assert.Equal(t, []Path{"A.class", "A$1.class"}, tally["JDK 8"])
}

func TestInspection_Label(t *testing.T) {
	ok := Inspection{Path: "A.class", Record: VersionRecord{Major: 52}}
	assert.Equal(t, "JDK 8", ok.Label())

	failed := Inspection{Path: "B.class", Record: VersionRecord{Major: 52}, Err: assert.AnError}
	assert.Equal(t, UnknownVersion, failed.Label())
}
