// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/internal/journal"
	"github.com/pdiddy/journal-engine/internal/render"
	"github.com/pdiddy/journal-engine/internal/store"
	"github.com/pdiddy/journal-engine/internal/translate"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// Sentinel errors the HTTP surface maps to status codes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Run kinds recorded in the ledger.
const (
	KindGenerate  = "generate"
	KindTranslate = "translate"
)

// compiler lets tests stand in for the xelatex wrapper.
type compiler interface {
	Compile(ctx context.Context, texPath string) error
}

// Runner wires the stores, the model-backed generator, the renderers, the
// PDF compiler and the translation service into the end-to-end flows.
type Runner struct {
	Store      *store.Store
	Gen        *Generator
	Compiler   compiler
	Translator *translate.Service
	Render     types.RenderConfig
	Logger     *zap.Logger
}

// Submit validates a new submission, derives its milestone dates, and
// persists it. A reused ID is rejected.
func (r *Runner) Submit(sub *types.SubmissionRecord) error {
	if err := journal.Validate(sub); err != nil {
		return err
	}
	if _, ok := r.Store.Submissions.Get(sub.ID); ok {
		return fmt.Errorf("submission %s: %w", sub.ID, ErrDuplicate)
	}
	p := brand.Lookup(sub.BrandName)
	if err := journal.ComputeMilestones(sub, p); err != nil {
		return err
	}
	return r.Store.Submissions.Put(sub.ID, *sub)
}

// Update applies a partial patch to an existing submission, revalidating and
// rederiving the milestone dates when received or the brand changed.
func (r *Runner) Update(id string, patch *types.SubmissionPatch) (*types.SubmissionRecord, error) {
	rec, ok := r.Store.Submissions.Get(id)
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	journal.ApplyPatch(&rec, patch)
	if patch.Received != nil || patch.BrandName != nil {
		// A stored record carries received in display form; rederiving
		// needs it back in ISO.
		if t, err := time.Parse(journal.MilestoneFormat, rec.Received); err == nil {
			rec.Received = t.Format(journal.ReceivedFormat)
		}
		if err := journal.Validate(&rec); err != nil {
			return nil, err
		}
		if err := journal.ComputeMilestones(&rec, brand.Lookup(rec.BrandName)); err != nil {
			return nil, err
		}
	}
	if err := r.Store.Submissions.Put(id, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Generate runs the full content pipeline for a stored submission: harvest
// references, synthesize sections and title, assemble the output record,
// persist it, render the HTML preview and LaTeX source, and compile the PDF.
// The run is recorded in the ledger either way.
func (r *Runner) Generate(ctx context.Context, id string) (rec *types.OutputRecord, err error) {
	sub, ok := r.Store.Submissions.Get(id)
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	p := brand.Lookup(sub.BrandName)

	runID, err := r.Store.Ledger.Begin(ctx, id, KindGenerate, "")
	if err != nil {
		return nil, err
	}
	defer func() {
		if endErr := r.Store.Ledger.End(ctx, runID, err); endErr != nil {
			r.Logger.Warn("recording run outcome failed", zap.Error(endErr))
		}
	}()

	r.Logger.Info("generating article",
		zap.String("id", id),
		zap.String("brand", sub.BrandName))

	refs, err := r.Gen.HarvestReferences(ctx, &sub, p)
	if err != nil {
		return nil, err
	}
	sections, err := r.Gen.SynthesizeSections(ctx, refs)
	if err != nil {
		return nil, err
	}
	title, err := r.Gen.SynthesizeTitle(ctx, sections.Summary, p)
	if err != nil {
		return nil, err
	}

	rec = Assemble(&sub, p, title, refs, sections)
	if err = r.Store.Outputs.Put(id, *rec); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.Render.OutputDir, id)
	texPath, err := r.writeArtifacts(rec, p, dir, id)
	if err != nil {
		return nil, err
	}
	if err = r.Compiler.Compile(ctx, texPath); err != nil {
		return nil, err
	}

	r.Logger.Info("article generated", zap.String("id", id), zap.String("dir", dir))
	return rec, nil
}

// Translate renders an existing article in another language. The translated
// artifacts land in their own directory; the stored English record stays
// untouched so it can be re-rendered or translated again.
func (r *Runner) Translate(ctx context.Context, id, lang string) (err error) {
	rec, ok := r.Store.Outputs.Get(id)
	if !ok {
		return fmt.Errorf("output %s: %w", id, ErrNotFound)
	}
	if !brand.KnownLang(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	p := brand.Lookup(rec.BrandName)

	runID, err := r.Store.Ledger.Begin(ctx, id, KindTranslate, lang)
	if err != nil {
		return err
	}
	defer func() {
		if endErr := r.Store.Ledger.End(ctx, runID, err); endErr != nil {
			r.Logger.Warn("recording run outcome failed", zap.Error(endErr))
		}
	}()

	r.Logger.Info("translating article",
		zap.String("id", id),
		zap.String("lang", lang))

	translated := r.Translator.Record(ctx, &rec, p, lang)

	dir := filepath.Join(r.Render.TranslatedDir, fmt.Sprintf("%s_translate_%s", lang, id))
	texPath, err := r.writeArtifacts(translated, p, dir, id)
	if err != nil {
		return err
	}
	if err = r.Compiler.Compile(ctx, texPath); err != nil {
		return err
	}

	r.Logger.Info("article translated", zap.String("id", id), zap.String("dir", dir))
	return nil
}

// CompileSource compiles a raw LaTeX document in a scratch directory under
// the output dir and returns the path of the produced PDF. Used by the editor
// surface to preview hand-tweaked sources.
func (r *Runner) CompileSource(ctx context.Context, source string) (string, error) {
	if err := os.MkdirAll(r.Render.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	dir, err := os.MkdirTemp(r.Render.OutputDir, "scratch-")
	if err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}
	texPath := filepath.Join(dir, "document.tex")
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("writing LaTeX source: %w", err)
	}
	if err := r.Compiler.Compile(ctx, texPath); err != nil {
		return "", err
	}
	return filepath.Join(dir, "document.pdf"), nil
}

// Recompile re-renders and recompiles a stored article without touching the
// model, for template or font fixes after the fact.
func (r *Runner) Recompile(ctx context.Context, id string) error {
	rec, ok := r.Store.Outputs.Get(id)
	if !ok {
		return fmt.Errorf("output %s: %w", id, ErrNotFound)
	}
	p := brand.Lookup(rec.BrandName)
	dir := filepath.Join(r.Render.OutputDir, id)
	texPath, err := r.writeArtifacts(&rec, p, dir, id)
	if err != nil {
		return err
	}
	return r.Compiler.Compile(ctx, texPath)
}

// writeArtifacts renders the HTML preview and LaTeX source into dir and
// returns the path of the .tex file for compilation.
func (r *Runner) writeArtifacts(rec *types.OutputRecord, p brand.Profile, dir, base string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating article directory: %w", err)
	}

	html, err := render.RenderHTML(rec, p)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, base+".html"), []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("writing HTML preview: %w", err)
	}

	tex, err := render.RenderLaTeX(rec, p)
	if err != nil {
		return "", err
	}
	texPath := filepath.Join(dir, base+".tex")
	if err := os.WriteFile(texPath, []byte(tex), 0o644); err != nil {
		return "", fmt.Errorf("writing LaTeX source: %w", err)
	}
	return texPath, nil
}
