package model

import (
	"fmt"
	"sort"
)

// UnknownVersion is displayed for artifacts whose header could not be decoded.
const UnknownVersion = "unknown version"

// VersionRecord is the version pair stored in a class file header.
type VersionRecord struct {
	Major uint16 `yaml:"major"`
	Minor uint16 `yaml:"minor"`
}

// Label returns the toolchain label for the record's major version.
func (v VersionRecord) Label() string {
	return LabelFor(v.Major)
}

var jdkLabels = map[uint16]string{
	45: "JDK 1.1",
	46: "JDK 1.2",
	47: "JDK 1.3",
	48: "JDK 1.4",
	49: "JDK 5",
	50: "JDK 6",
	51: "JDK 7",
	52: "JDK 8",
	53: "JDK 9",
	54: "JDK 10",
	55: "JDK 11",
	56: "JDK 12",
	57: "JDK 13",
	58: "JDK 14",
	59: "JDK 15",
	60: "JDK 16",
	61: "JDK 17",
	62: "JDK 18",
	63: "JDK 19",
	64: "JDK 20",
	65: "JDK 21",
}

// LabelFor maps a class file major version to a JDK release label.
// Versions outside the known table yield a label embedding the raw number.
func LabelFor(major uint16) string {
	if label, ok := jdkLabels[major]; ok {
		return label
	}

	return fmt.Sprintf("unknown JDK version (major: %d)", major)
}

// VersionTally groups artifact paths by toolchain label. It is built for a
// single run and returned to the caller.
type VersionTally map[string][]Path

// Add records path under label.
func (t VersionTally) Add(label string, path Path) {
	t[label] = append(t[label], path)
}

// Labels returns the recorded labels in sorted order.
func (t VersionTally) Labels() []string {
	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}

// Counts returns the number of artifacts per label.
func (t VersionTally) Counts() map[string]int {
	counts := make(map[string]int, len(t))
	for label, paths := range t {
		counts[label] = len(paths)
	}

	return counts
}

// Mixed reports whether more than one toolchain label was seen.
func (t VersionTally) Mixed() bool {
	return len(t) > 1
}

// Inspection is the outcome of decoding one class file header.
type Inspection struct {
	Path   Path
	Record VersionRecord
	Err    error
}

// Label returns the toolchain label, or UnknownVersion when decoding failed.
func (i Inspection) Label() string {
	if i.Err != nil {
		return UnknownVersion
	}

	return i.Record.Label()
}
