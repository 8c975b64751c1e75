// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texc compiles LaTeX sources to PDF with xelatex.
package texc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const binXelatex = "xelatex"

// executor abstracts command execution for testing.
type executor interface {
	// RunInDir executes name with args, with the working directory set to
	// dir. The compiler's exit status is the only success signal; its
	// stdout is noise.
	RunInDir(ctx context.Context, dir, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) RunInDir(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

// Compiler runs the two-pass xelatex build for an article directory.
type Compiler struct {
	// LogsDir receives the compiler byproducts after a successful build,
	// under one subdirectory per article.
	LogsDir string

	exec executor
}

// NewCompiler returns a Compiler moving byproducts into logsDir.
func NewCompiler(logsDir string) *Compiler {
	return &Compiler{LogsDir: logsDir, exec: &osExecutor{}}
}

// byproductExts are moved out of the article directory after a successful
// compile.
var byproductExts = []string{".log", ".aux", ".out"}

// Compile runs xelatex twice over texPath so cross-references resolve, from
// inside the article's own directory. On failure the error carries the
// compiler's own error lines pulled from the log. On success the log, aux
// and out files move to the logs directory.
func (c *Compiler) Compile(ctx context.Context, texPath string) error {
	dir := filepath.Dir(texPath)
	name := filepath.Base(texPath)

	for pass := 1; pass <= 2; pass++ {
		if err := c.exec.RunInDir(ctx, dir, binXelatex, "-interaction=nonstopmode", name); err != nil {
			return fmt.Errorf("xelatex pass %d: %s", pass, compileErrors(texPath))
		}
	}

	if err := c.stashByproducts(texPath); err != nil {
		return err
	}
	return nil
}

// compileErrors reads the compiler log next to the source and joins the
// lines xelatex marks as errors with a leading "! ". A missing or clean log
// yields a generic message.
func compileErrors(texPath string) string {
	logPath := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".log"
	data, err := os.ReadFile(logPath)
	if err != nil {
		return "compilation failed and no log was produced"
	}
	var errLines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "! ") {
			errLines = append(errLines, strings.TrimSpace(line))
		}
	}
	if len(errLines) == 0 {
		return "compilation failed; see " + logPath
	}
	return strings.Join(errLines, "; ")
}

// stashByproducts moves the log, aux and out files into LogsDir/<article>.
func (c *Compiler) stashByproducts(texPath string) error {
	dir := filepath.Dir(texPath)
	base := strings.TrimSuffix(filepath.Base(texPath), filepath.Ext(texPath))

	dest := filepath.Join(c.LogsDir, filepath.Base(dir))
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}
	for _, ext := range byproductExts {
		src := filepath.Join(dir, base+ext)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, filepath.Join(dest, base+ext)); err != nil {
			return fmt.Errorf("moving %s: %w", src, err)
		}
	}
	return nil
}
