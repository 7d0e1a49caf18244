package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/classpick/internal/adapter"
	"github.com/mouse-blink/classpick/internal/controller"
	m "github.com/mouse-blink/classpick/internal/model"
)

// ToolName is recorded in manifests.
const ToolName = "classpick"

// CopyArgs holds the inputs of a copy run.
type CopyArgs struct {
	SourceRoot m.Path
	ClassRoot  m.Path
	OutputRoot m.Path
	Manifest   m.Path // optional, written when non-empty
	DryRun     bool
	Version    string
}

// InspectArgs holds the inputs of a header inspection run.
type InspectArgs struct {
	Paths []m.Path
}

// Workflow drives the scan, resolve and copy pipeline.
type Workflow interface {
	Copy(ctx context.Context, args CopyArgs) (m.Summary, error)
	Inspect(ctx context.Context, args InspectArgs) ([]m.Inspection, m.VersionTally, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	manifests adapter.ManifestStore
	ui        controller.UI
	scanner   Scanner
	resolver  Resolver
	decoder   Decoder
	layout    Layout
	logger    *log.Logger
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifests adapter.ManifestStore,
	ui controller.UI,
	layout Layout,
	logger *log.Logger,
) Workflow {
	layout = layout.withDefaults()

	return &workflow{
		fsAdapter: fsAdapter,
		manifests: manifests,
		ui:        ui,
		scanner:   NewScanner(fsAdapter, layout),
		resolver:  NewResolver(fsAdapter, layout),
		decoder:   NewDecoder(fsAdapter),
		layout:    layout,
		logger:    logger,
		now:       time.Now,
	}
}

// roots are the absolute forms of the CopyArgs directories.
type roots struct {
	source m.Path
	class  m.Path
	output m.Path
}

// Copy resolves every source unit before copying anything. The first unit
// without class files aborts the run with an *UnresolvedUnitError and the
// output root is left untouched.
func (w *workflow) Copy(ctx context.Context, args CopyArgs) (m.Summary, error) {
	r, err := w.prepareRoots(args)
	if err != nil {
		return m.Summary{}, err
	}

	units, others, err := w.scanner.Scan(r.source)
	if err != nil {
		return m.Summary{}, err
	}

	w.logger.Info("scanned source tree", "root", r.source, "units", len(units), "others", len(others))

	matches, err := w.resolveAll(ctx, r.class, units)
	if err != nil {
		return m.Summary{}, err
	}

	if err := w.ui.Start(controller.WithCopyMode(), controller.WithDryRun(args.DryRun)); err != nil {
		return m.Summary{}, err
	}
	defer w.ui.Close()

	w.ui.DisplayScan(r.source, len(units), len(others))

	if !args.DryRun {
		if err := w.fsAdapter.MkdirAll(r.output); err != nil {
			return m.Summary{}, &CopyError{Src: r.source, Dst: r.output, Err: err}
		}
	}

	artifactCount := 0
	for _, match := range matches {
		artifactCount += len(match.Artifacts)
	}

	records := make([]m.CopyRecord, 0, len(others)+artifactCount)
	summary := m.Summary{Units: len(matches), Tally: m.VersionTally{}}

	resources, err := w.copyResources(ctx, r, others, args)
	if err != nil {
		return m.Summary{}, err
	}

	records = append(records, resources...)
	summary.Resources = len(resources)

	artifacts, err := w.copyArtifacts(ctx, r, matches, args, summary.Tally)
	if err != nil {
		return m.Summary{}, err
	}

	records = append(records, artifacts...)
	summary.Artifacts = len(artifacts)
	summary.Total = summary.Resources + summary.Artifacts

	if err := w.ui.DisplaySummary(summary); err != nil {
		return m.Summary{}, err
	}

	w.reportTally(summary.Tally)

	if args.Manifest != "" {
		if err := w.saveManifest(r, args, records, summary); err != nil {
			return m.Summary{}, err
		}
	}

	w.logger.Info("copy finished",
		"class_files", summary.Artifacts,
		"non_source_files", summary.Resources,
		"output", r.output,
		"dry_run", args.DryRun,
	)

	return summary, nil
}

// Inspect decodes the header of every class file named by args.Paths.
// Directories are searched recursively. Decode failures are kept in the
// result; ErrNothingDecoded is returned only if no file could be decoded.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) ([]m.Inspection, m.VersionTally, error) {
	files, err := w.collectClassFiles(args.Paths)
	if err != nil {
		return nil, nil, err
	}

	inspections := make([]m.Inspection, 0, len(files))
	tally := m.VersionTally{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		record, err := w.decoder.DecodeVersion(file)
		if err != nil {
			w.logger.Warn("cannot read JDK version", "path", file, "err", err)
		} else {
			tally.Add(record.Label(), file)
		}

		inspections = append(inspections, m.Inspection{Path: file, Record: record, Err: err})
	}

	if err := w.ui.Start(controller.WithInspectMode()); err != nil {
		return nil, nil, err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayInspection(inspections, tally); err != nil {
		return nil, nil, err
	}

	w.reportTally(tally)

	if len(tally) == 0 {
		return inspections, tally, ErrNothingDecoded
	}

	return inspections, tally, nil
}

func (w *workflow) prepareRoots(args CopyArgs) (roots, error) {
	source, err := w.existingDir("source", args.SourceRoot)
	if err != nil {
		return roots{}, err
	}

	class, err := w.existingDir("class", args.ClassRoot)
	if err != nil {
		return roots{}, err
	}

	if args.OutputRoot == "" {
		return roots{}, &RootError{Role: "output", Path: args.OutputRoot, Err: errors.New("path is empty")}
	}

	output, err := w.fsAdapter.AbsPath(args.OutputRoot)
	if err != nil {
		return roots{}, &RootError{Role: "output", Path: args.OutputRoot, Err: err}
	}

	if err := w.checkOverlap(output, map[string]m.Path{"source": source, "class": class}); err != nil {
		return roots{}, err
	}

	return roots{source: source, class: class, output: output}, nil
}

// checkOverlap rejects an output root that equals or lies inside an input
// root. Copying there would truncate inputs or feed copies into later scans.
func (w *workflow) checkOverlap(output m.Path, inputs map[string]m.Path) error {
	realOutput, err := w.fsAdapter.RealPath(output)
	if err != nil {
		return &RootError{Role: "output", Path: output, Err: err}
	}

	for _, role := range []string{"source", "class"} {
		realInput, err := w.fsAdapter.RealPath(inputs[role])
		if err != nil {
			return &RootError{Role: role, Path: inputs[role], Err: err}
		}

		rel, err := w.fsAdapter.RelPath(realInput, realOutput)
		if err != nil {
			continue
		}

		if rel == "." || !isOutside(rel) {
			return &RootError{
				Role: "output",
				Path: output,
				Err:  fmt.Errorf("overlaps %s root %s", role, inputs[role]),
			}
		}
	}

	return nil
}

func isOutside(rel m.Path) bool {
	s := string(rel)
	return s == ".." || strings.HasPrefix(s, ".."+string(filepath.Separator)) || filepath.IsAbs(s)
}

func (w *workflow) existingDir(role string, path m.Path) (m.Path, error) {
	if path == "" {
		return "", &RootError{Role: role, Path: path, Err: errors.New("path is empty")}
	}

	abs, err := w.fsAdapter.AbsPath(path)
	if err != nil {
		return "", &RootError{Role: role, Path: path, Err: err}
	}

	info, err := w.fsAdapter.FileInfo(abs)
	if err != nil {
		return "", &RootError{Role: role, Path: abs, Err: err}
	}

	if !info.IsDir() {
		return "", &RootError{Role: role, Path: abs, Err: errors.New("not a directory")}
	}

	return abs, nil
}

// resolveAll matches every unit before anything is copied and stops at the
// first unit left without class files.
func (w *workflow) resolveAll(ctx context.Context, classRoot m.Path, units []m.SourceUnit) ([]m.ArtifactMatch, error) {
	matches := make([]m.ArtifactMatch, 0, len(units))

	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		artifacts, err := w.resolver.Resolve(classRoot, unit.Rel)
		if err != nil {
			return nil, err
		}

		if len(artifacts) == 0 {
			return nil, w.unresolved(classRoot, unit)
		}

		w.logger.Debug("resolved source unit", "unit", unit.Rel, "class_files", len(artifacts))

		matches = append(matches, m.ArtifactMatch{Unit: unit, Artifacts: artifacts})
	}

	matches = AssignClaims(matches)

	for _, match := range matches {
		if len(match.Artifacts) == 0 {
			return nil, w.unresolved(classRoot, match.Unit)
		}
	}

	return matches, nil
}

func (w *workflow) unresolved(classRoot m.Path, unit m.SourceUnit) error {
	err := &UnresolvedUnitError{
		Unit:       unit.Rel,
		PackageDir: w.fsAdapter.JoinPath(string(classRoot), string(unit.Package())),
	}

	w.logger.Error("source unit has no class files, nothing copied", "unit", unit.Rel, "package_dir", err.PackageDir)

	return err
}

func (w *workflow) copyResources(ctx context.Context, r roots, others []m.Path, args CopyArgs) ([]m.CopyRecord, error) {
	if len(others) == 0 {
		return nil, nil
	}

	w.ui.DisplayPhase(controller.PhaseResources)

	records := make([]m.CopyRecord, 0, len(others))

	for _, file := range others {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := w.copyOne(r.source, r.output, file, args)
		if err != nil {
			return nil, err
		}

		record.Kind = m.KindResource

		w.ui.DisplayResource(record)
		records = append(records, record)
	}

	return records, nil
}

func (w *workflow) copyArtifacts(
	ctx context.Context,
	r roots,
	matches []m.ArtifactMatch,
	args CopyArgs,
	tally m.VersionTally,
) ([]m.CopyRecord, error) {
	w.ui.DisplayPhase(controller.PhaseArtifacts)

	var records []m.CopyRecord

	for _, match := range matches {
		w.ui.DisplayUnit(match.Unit)

		for _, artifact := range match.Artifacts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			label := m.UnknownVersion

			version, err := w.decoder.DecodeVersion(artifact)
			if err != nil {
				w.logger.Warn("cannot read JDK version", "path", artifact, "err", err)
			} else {
				label = version.Label()
				tally.Add(label, artifact)
			}

			record, err := w.copyOne(r.class, r.output, artifact, args)
			if err != nil {
				return nil, err
			}

			record.Kind = m.KindArtifact
			record.Unit = match.Unit.Rel
			record.Label = label

			w.ui.DisplayArtifact(record)
			records = append(records, record)
		}
	}

	return records, nil
}

// copyOne mirrors file from under base to the same relative location under
// the output root. In dry-run mode only the metadata is collected.
func (w *workflow) copyOne(base, output, file m.Path, args CopyArgs) (m.CopyRecord, error) {
	rel, err := w.fsAdapter.RelPath(base, file)
	if err != nil || rel == ".." || strings.HasPrefix(string(rel), ".."+string(filepath.Separator)) {
		if err == nil {
			err = fmt.Errorf("%s is outside %s", file, base)
		}

		return m.CopyRecord{}, &CopyError{Src: file, Dst: output, Err: err}
	}

	dst := w.fsAdapter.JoinPath(string(output), string(rel))
	record := m.CopyRecord{Rel: rel}

	if args.DryRun {
		info, err := w.fsAdapter.FileInfo(file)
		if err != nil {
			return m.CopyRecord{}, &CopyError{Src: file, Dst: dst, Err: err}
		}

		record.Size = info.Size()
	} else {
		written, err := w.fsAdapter.CopyFile(file, dst)
		if err != nil {
			return m.CopyRecord{}, &CopyError{Src: file, Dst: dst, Err: err}
		}

		record.Size = written
	}

	if args.Manifest != "" {
		hashed := dst
		if args.DryRun {
			hashed = file
		}

		sum, err := w.fsAdapter.HashFile(hashed)
		if err != nil {
			return m.CopyRecord{}, &CopyError{Src: file, Dst: dst, Err: fmt.Errorf("checksum: %w", err)}
		}

		record.Checksum = sum
	}

	return record, nil
}

func (w *workflow) reportTally(tally m.VersionTally) {
	if !tally.Mixed() {
		return
	}

	counts := tally.Counts()
	parts := make([]string, 0, len(counts))

	for _, label := range tally.Labels() {
		parts = append(parts, fmt.Sprintf("%s: %d", label, counts[label]))
	}

	w.logger.Warn("multiple JDK versions detected", "versions", strings.Join(parts, ", "))
}

func (w *workflow) saveManifest(r roots, args CopyArgs, records []m.CopyRecord, summary m.Summary) error {
	manifest := m.Manifest{
		Tool:       ToolName,
		Version:    args.Version,
		CreatedAt:  w.now().UTC(),
		SourceRoot: r.source,
		ClassRoot:  r.class,
		OutputRoot: r.output,
		DryRun:     args.DryRun,
		Records:    records,
		Summary:    summary,
	}

	if err := w.manifests.Save(args.Manifest, manifest); err != nil {
		return err
	}

	w.logger.Info("manifest written", "path", args.Manifest)

	return nil
}

func (w *workflow) collectClassFiles(paths []m.Path) ([]m.Path, error) {
	var files []m.Path

	for _, path := range paths {
		info, err := w.fsAdapter.FileInfo(path)
		if err != nil {
			return nil, &TraversalError{Path: path, Err: err}
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = w.fsAdapter.Walk(path, true, func(walked string, entry fs.DirEntry, err error) error {
			if err != nil {
				return &TraversalError{Path: m.Path(walked), Err: err}
			}

			if entry.Type().IsRegular() && filepath.Ext(entry.Name()) == w.layout.ArtifactExt {
				files = append(files, m.Path(walked))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
