package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codetidy/codetidy/internal/workflow"
)

type pageData struct {
	Error       string
	Standardize *workflow.StandardizeReport
	Translate   *workflow.TranslateResult
	From        string
	To          string
}

func (s *Server) actionContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), s.timeout)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", pageData{})
}

func (s *Server) handleStandardize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", pageData{Error: "a source file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", pageData{Error: "failed to open upload: " + err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", pageData{Error: "failed to read upload: " + err.Error()})
		return
	}

	req := workflow.StandardizeRequest{
		FileName:     fileHeader.Filename,
		Content:      content,
		Language:     workflow.Language(c.PostForm("language")),
		Standardizer: workflow.Standardizer(c.PostForm("standardizer")),
	}

	ctx, cancel := s.actionContext(c)
	defer cancel()

	report, err := s.workflow.Standardize(ctx, req)
	if err != nil {
		s.logger.Warn("standardize failed", "file", req.FileName, "error", err)
		c.HTML(http.StatusBadRequest, "index.tmpl", pageData{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", pageData{Standardize: report})
}

func (s *Server) handleTranslate(c *gin.Context) {
	from := workflow.Language(c.PostForm("from"))
	to := workflow.LanguageR
	if from == workflow.LanguageR {
		to = workflow.LanguagePython
	}

	req := workflow.TranslateRequest{
		Code: c.PostForm("code"),
		From: from,
		To:   to,
	}

	ctx, cancel := s.actionContext(c)
	defer cancel()

	result, err := s.workflow.Translate(ctx, req)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", pageData{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Translate: result,
		From:      req.From.Label(),
		To:        req.To.Label(),
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.String(http.StatusBadRequest, "invalid request id")
		return
	}

	name := filepath.Base(c.Param("name"))
	path := filepath.Join(s.scratchRoot, requestID, name)

	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "file not found")
		return
	}

	c.FileAttachment(path, name)
}
