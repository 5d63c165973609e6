package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"skillgap/internal/observability"
	"skillgap/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// MatchResponse represents the response body for the match endpoint
type MatchResponse struct {
	Analysis types.MatchResult `json:"analysis"`
	JobTitle string            `json:"job_title"`
	Status   string            `json:"status"`
}

// BatchResponse represents the response body for the batch endpoint
type BatchResponse struct {
	Status    string            `json:"status"`
	TotalJobs int               `json:"total_jobs"`
	Results   types.BatchResult `json:"results"`
}

// SkillsResponse represents the response body for the skills endpoint
type SkillsResponse struct {
	Status string   `json:"status"`
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// resolveJob resolves the job requirement for a match request, either inline
// or by catalog title lookup. The returned status code is used when
// resolution fails.
func (s *Server) resolveJob(req MatchRequest) (types.JobRequirement, int, error) {
	if req.Job != nil {
		if strings.TrimSpace(req.Job.Title) == "" {
			return types.JobRequirement{}, http.StatusBadRequest, fmt.Errorf("job title is required")
		}
		if len(req.Job.Required) == 0 {
			return types.JobRequirement{}, http.StatusBadRequest, fmt.Errorf("job required skills cannot be empty")
		}
		return *req.Job, 0, nil
	}

	if strings.TrimSpace(req.JobTitle) != "" {
		job, ok := s.Catalog.Find(req.JobTitle)
		if !ok {
			return types.JobRequirement{}, http.StatusNotFound, fmt.Errorf("job %q not found in catalog", req.JobTitle)
		}
		return job, 0, nil
	}

	return types.JobRequirement{}, http.StatusBadRequest, fmt.Errorf("either job or jobTitle is required")
}

// createMatchHandler wraps the match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillgap.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.ResumeSkills) == 0 {
			err := fmt.Errorf("missing resume skills")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume skills", "resumeSkills field is required", http.StatusBadRequest)
			return
		}

		job, status, err := s.resolveJob(req)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid job requirement", err.Error(), status)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_skill_count", len(req.ResumeSkills)),
			attribute.String("request.job_title", job.Title),
			attribute.String("operation", "match"),
		)

		metrics := om.GetMetrics()
		var result types.MatchResult
		err = metrics.TrackMatchOperation(ctx, "match", func(ctx context.Context) *observability.MatchOperationResult {
			result = s.Matcher.Match(req.ResumeSkills, job)
			return &observability.MatchOperationResult{
				JobFitScore: &result.JobFitScore,
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_matched", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to match resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_matched", true, om,
			attribute.String("job_title", job.Title),
			attribute.Int("missing_count", len(result.Missing)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.job_fit_score", result.JobFitScore),
			attribute.Int("response.missing_count", len(result.Missing)),
		)

		writeJSONResponse(w, span, MatchResponse{
			Analysis: result,
			JobTitle: job.Title,
			Status:   "success",
		})
	}
}

// createBatchHandler wraps the batch handler with observability
func (s *Server) createBatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillgap.api")
		ctx, span := tracer.Start(ctx, "api.batch")
		defer span.End()

		var req BatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.ResumeSkills) == 0 {
			err := fmt.Errorf("missing resume skills")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume skills", "resumeSkills field is required", http.StatusBadRequest)
			return
		}

		// An omitted jobs list means the whole catalog
		jobs := req.Jobs
		if len(jobs) == 0 {
			jobs = s.Catalog.Jobs()
		}
		if len(jobs) == 0 {
			err := fmt.Errorf("no jobs to compare")
			span.RecordError(err)
			writeErrorResponse(w, "No jobs to compare", "jobs field is empty and no catalog is loaded", http.StatusBadRequest)
			return
		}
		for _, job := range jobs {
			if strings.TrimSpace(job.Title) == "" {
				err := fmt.Errorf("job with empty title")
				span.RecordError(err)
				writeErrorResponse(w, "Invalid job requirement", "every job needs a title", http.StatusBadRequest)
				return
			}
		}

		span.SetAttributes(
			attribute.Int("request.resume_skill_count", len(req.ResumeSkills)),
			attribute.Int("request.job_count", len(jobs)),
			attribute.String("operation", "batch"),
		)

		metrics := om.GetMetrics()
		var results types.BatchResult
		err := metrics.TrackMatchOperation(ctx, "batch", func(ctx context.Context) *observability.MatchOperationResult {
			var compareErr error
			results, compareErr = s.Matcher.CompareAll(ctx, req.ResumeSkills, jobs)
			res := &observability.MatchOperationResult{Error: compareErr}
			if compareErr == nil && len(results) > 0 {
				res.JobFitScore = &results[0].JobFitScore
			}
			return res
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "batch_compared", false, om)
			writeErrorResponse(w, "Failed to compare jobs", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "batch_compared", true, om,
			attribute.Int("job_count", len(jobs)))
		metrics.RecordBatchSize(ctx, int64(len(jobs)), om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.result_count", len(results)),
		)

		writeJSONResponse(w, span, BatchResponse{
			Status:    "success",
			TotalJobs: len(results),
			Results:   results,
		})
	}
}

// createSkillsHandler wraps the skill extraction handler with observability
func (s *Server) createSkillsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillgap.api")
		ctx, span := tracer.Start(ctx, "api.skills")
		defer span.End()

		var req SkillsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing text", "text field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("operation", "skills"),
		)

		extracted := s.Normalizer.ExtractFromText(req.Text)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "skills_normalized", true, om,
			attribute.Int("skill_count", len(extracted)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.skill_count", len(extracted)),
		)

		writeJSONResponse(w, span, SkillsResponse{
			Status: "success",
			Skills: extracted,
			Count:  len(extracted),
		})
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
