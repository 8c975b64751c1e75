// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeExecutor records invocations and simulates compiler behavior.
type fakeExecutor struct {
	calls    [][]string
	dirs     []string
	failPass int    // 1-based pass to fail on, 0 = never
	log      string // written next to the .tex before failing
}

func (f *fakeExecutor) RunInDir(ctx context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	f.dirs = append(f.dirs, dir)
	pass := len(f.calls)
	if f.failPass != 0 && pass == f.failPass {
		if f.log != "" {
			texName := args[len(args)-1]
			logName := strings.TrimSuffix(texName, ".tex") + ".log"
			os.WriteFile(filepath.Join(dir, logName), []byte(f.log), 0o644)
		}
		return fmt.Errorf("exit status 1")
	}
	// Simulate the byproducts of a successful pass.
	texName := args[len(args)-1]
	base := strings.TrimSuffix(texName, ".tex")
	for _, ext := range []string{".log", ".aux", ".out", ".pdf"} {
		os.WriteFile(filepath.Join(dir, base+ext), []byte("x"), 0o644)
	}
	return nil
}

func writeTex(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "abc.tex")
	if err := os.WriteFile(path, []byte(`\documentclass{article}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileTwoPasses(t *testing.T) {
	articleDir := filepath.Join(t.TempDir(), "abc")
	if err := os.MkdirAll(articleDir, 0o755); err != nil {
		t.Fatal(err)
	}
	texPath := writeTex(t, articleDir)

	logsDir := t.TempDir()
	fake := &fakeExecutor{}
	c := &Compiler{LogsDir: logsDir, exec: fake}

	if err := c.Compile(context.Background(), texPath); err != nil {
		t.Fatal(err)
	}
	if len(fake.calls) != 2 {
		t.Fatalf("xelatex ran %d times, want 2", len(fake.calls))
	}
	for i, call := range fake.calls {
		if call[0] != "xelatex" || call[1] != "-interaction=nonstopmode" || call[2] != "abc.tex" {
			t.Errorf("call %d = %v", i, call)
		}
		if fake.dirs[i] != articleDir {
			t.Errorf("call %d ran in %s, want %s", i, fake.dirs[i], articleDir)
		}
	}

	// Byproducts moved, PDF left in place.
	for _, ext := range []string{".log", ".aux", ".out"} {
		if _, err := os.Stat(filepath.Join(logsDir, "abc", "abc"+ext)); err != nil {
			t.Errorf("byproduct %s not moved: %v", ext, err)
		}
		if _, err := os.Stat(filepath.Join(articleDir, "abc"+ext)); err == nil {
			t.Errorf("byproduct %s still in article dir", ext)
		}
	}
	if _, err := os.Stat(filepath.Join(articleDir, "abc.pdf")); err != nil {
		t.Errorf("pdf missing: %v", err)
	}
}

func TestCompileFailureExtractsLogErrors(t *testing.T) {
	articleDir := t.TempDir()
	texPath := writeTex(t, articleDir)

	fake := &fakeExecutor{
		failPass: 1,
		log: "This is XeTeX\n! Undefined control sequence.\nl.12 \\badmacro\n! Emergency stop.\n",
	}
	c := &Compiler{LogsDir: t.TempDir(), exec: fake}

	err := c.Compile(context.Background(), texPath)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "! Undefined control sequence.; ! Emergency stop."
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing %q", err, want)
	}
}

func TestCompileFailureWithoutLog(t *testing.T) {
	articleDir := t.TempDir()
	texPath := writeTex(t, articleDir)

	fake := &fakeExecutor{failPass: 1}
	c := &Compiler{LogsDir: t.TempDir(), exec: fake}

	err := c.Compile(context.Background(), texPath)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no log was produced") {
		t.Errorf("error = %q", err)
	}
}

func TestCompileSecondPassFailure(t *testing.T) {
	articleDir := t.TempDir()
	texPath := writeTex(t, articleDir)

	fake := &fakeExecutor{
		failPass: 2,
		log:      "! LaTeX Error: File `missing.sty' not found.\n",
	}
	c := &Compiler{LogsDir: t.TempDir(), exec: fake}

	err := c.Compile(context.Background(), texPath)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "pass 2") {
		t.Errorf("error = %q", err)
	}
}
