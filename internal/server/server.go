// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the journal pipeline over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/llm"
	"github.com/pdiddy/journal-engine/internal/pipeline"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// Server wires the pipeline runner and the ask passthrough into a gin router.
type Server struct {
	Runner *pipeline.Runner
	Ask    map[string]llm.Provider
	Logger *zap.Logger
}

// New builds a Server. The ask map is keyed by backend name in the URL
// (gemini, groq).
func New(r *pipeline.Runner, ask map[string]llm.Provider, logger *zap.Logger) *Server {
	return &Server{Runner: r, Ask: ask, Logger: logger}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery(), s.requestLog())

	e.POST("/journals", s.createJournal)
	e.GET("/journals", s.listJournals)
	e.GET("/journals/:id", s.getJournal)
	e.PATCH("/journals/:id", s.patchJournal)
	e.DELETE("/journals/:id", s.deleteJournal)
	e.GET("/journals/:id/runs", s.journalRuns)

	e.POST("/pipeline/:id", s.runPipeline)
	e.POST("/compile", s.compileSource)
	e.POST("/compile/:id", s.recompile)
	e.POST("/translate", s.translateJournal)

	e.POST("/ask/:backend", s.ask)
	return e
}

// requestLog logs one line per request with method, path, status and latency.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// fail writes the {"detail": ...} error body, mapping the pipeline sentinels
// to their status codes.
func fail(c *gin.Context, fallback int, err error) {
	status := fallback
	switch {
	case errors.Is(err, pipeline.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, pipeline.ErrDuplicate):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}

func (s *Server) createJournal(c *gin.Context) {
	var sub types.SubmissionRecord
	if err := c.ShouldBindJSON(&sub); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.Runner.Submit(&sub); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) listJournals(c *gin.Context) {
	c.JSON(http.StatusOK, s.Runner.Store.Submissions.All())
}

func (s *Server) getJournal(c *gin.Context) {
	rec, ok := s.Runner.Store.Submissions.Get(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, pipeline.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) patchJournal(c *gin.Context) {
	var patch types.SubmissionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	rec, err := s.Runner.Update(c.Param("id"), &patch)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteJournal(c *gin.Context) {
	id := c.Param("id")
	found, err := s.Runner.Store.Submissions.Delete(id)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, pipeline.ErrNotFound)
		return
	}
	// Generated output, if any, goes with the submission.
	if _, err := s.Runner.Store.Outputs.Delete(id); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "deleted"})
}

func (s *Server) journalRuns(c *gin.Context) {
	runs, err := s.Runner.Store.Ledger.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

func (s *Server) runPipeline(c *gin.Context) {
	rec, err := s.Runner.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type compileRequest struct {
	Source string `json:"source"`
}

// compileSource compiles caller-supplied LaTeX in a scratch directory, for
// previewing hand-edited sources.
func (s *Server) compileSource(c *gin.Context) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Source == "" {
		fail(c, http.StatusBadRequest, errors.New("source is required"))
		return
	}
	pdf, err := s.Runner.CompileSource(c.Request.Context(), req.Source)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pdf": pdf})
}

func (s *Server) recompile(c *gin.Context) {
	if err := s.Runner.Recompile(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "compiled"})
}

func (s *Server) translateJournal(c *gin.Context) {
	var req types.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.ID == "" || req.Language == "" {
		fail(c, http.StatusBadRequest, errors.New("id and language are required"))
		return
	}
	if err := s.Runner.Translate(c.Request.Context(), req.ID, req.Language); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "translated"})
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

// ask is a raw passthrough to one of the configured model backends, for
// probing prompts without running the pipeline.
func (s *Server) ask(c *gin.Context) {
	p, ok := s.Ask[c.Param("backend")]
	if !ok {
		fail(c, http.StatusNotFound, errors.New("unknown backend"))
		return
	}
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Prompt == "" {
		fail(c, http.StatusBadRequest, errors.New("prompt is required"))
		return
	}
	text, err := p.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		fail(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": text})
}
