package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resumelift/parsers"
	"resumelift/services"
	"resumelift/utils"
)

// TransformHandler owns the full text pipeline: parse, analyze, optimize,
// format, with the LLM path as a guarded first choice.
type TransformHandler struct {
	parser    *parsers.ResumeParser
	analyzer  *services.JDAnalyzer
	optimizer *services.Optimizer
	formatter *services.Formatter
	llm       *services.LLMService
	logger    *utils.Logger
}

func NewTransformHandler(
	parser *parsers.ResumeParser,
	analyzer *services.JDAnalyzer,
	optimizer *services.Optimizer,
	formatter *services.Formatter,
	llm *services.LLMService,
	logger *utils.Logger,
) *TransformHandler {
	return &TransformHandler{
		parser:    parser,
		analyzer:  analyzer,
		optimizer: optimizer,
		formatter: formatter,
		llm:       llm,
		logger:    logger,
	}
}

// TransformResponse is the success shape of POST /api/resume/transform.
type TransformResponse struct {
	Resume         string  `json:"resume"`
	ProcessingTime float64 `json:"processingTime"`
	Method         string  `json:"method"`
}

// TransformError is the failure shape. The endpoint still answers HTTP 200:
// the client contract is "always return something displayable".
type TransformError struct {
	Error    string `json:"error"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Transform restructures a resume against a job description. Input that is
// too short is the only client error; everything else degrades to the
// deterministic pipeline and, at worst, a placeholder-backed document.
func (h *TransformHandler) Transform(c *gin.Context) {
	start := time.Now()

	defer func() {
		// The endpoint never surfaces an unhandled failure; anything that
		// slips past the pipeline's own recovery still becomes a JSON body.
		if r := recover(); r != nil {
			h.logger.Error("transform panicked", nil, map[string]interface{}{"panic": r})
			c.JSON(http.StatusOK, TransformError{Error: "Failed to process resume", Fallback: true})
		}
	}()

	resumeText := strings.TrimSpace(c.PostForm("resume_text"))
	jobDescription := strings.TrimSpace(c.PostForm("job_description"))

	if len(resumeText) < parsers.MinResumeChars {
		c.JSON(http.StatusOK, TransformError{Error: "Resume text is too short (minimum 50 characters)"})
		return
	}
	if len(jobDescription) < parsers.MinJobDescChars {
		c.JSON(http.StatusOK, TransformError{Error: "Job description is too short (minimum 20 characters)"})
		return
	}

	resumeText = parsers.SanitizeText(resumeText, parsers.MaxResumeChars)
	jobDescription = parsers.SanitizeText(jobDescription, parsers.MaxJobDescChars)

	resume := h.parser.Parse(resumeText)
	profile := h.analyzer.Analyze(jobDescription)

	method := "rules"
	var document string

	if h.llm != nil && h.llm.Enabled() {
		if llmDoc, err := h.llm.OptimizeResume(c.Request.Context(), resume, jobDescription); err == nil {
			document = llmDoc
			method = "llm"
		} else {
			h.logger.Warn("LLM path failed, using rule-based pipeline", map[string]interface{}{"error": err.Error()})
		}
	}

	if document == "" {
		optimized := h.optimizer.Optimize(resume, profile, jobDescription)
		document = h.formatter.Format(optimized)
	}

	elapsed := float64(time.Since(start).Milliseconds())
	h.logger.Info("resume transformed", map[string]interface{}{
		"method":        method,
		"processing_ms": elapsed,
	})

	c.JSON(http.StatusOK, TransformResponse{
		Resume:         document,
		ProcessingTime: elapsed,
		Method:         method,
	})
}
