package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kazimashinani/jobboard/internal/api/metrics"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

// ViewEnqueuer accepts job views for asynchronous counting.
type ViewEnqueuer interface {
	Enqueue(view domain.JobView) bool
}

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
	views   ViewEnqueuer
}

// NewJobHandler builds a JobHandler. views may be nil, in which case detail
// reads are not counted.
func NewJobHandler(service ports.JobService, views ViewEnqueuer) *JobHandler {
	return &JobHandler{service: service, views: views}
}

// List handles GET /api/jobs.
//
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Category, or all"
// @Param        location  query     string  false  "Location substring"
// @Param        search    query     string  false  "Matches title, description or business type"
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10, max 100)"
// @Success      200       {object}  listJobsResponse
// @Failure      400       {object}  messageResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	res, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listJobsResponse{
		Success:     true,
		Jobs:        toJobResponses(res.Jobs),
		Total:       res.Total,
		TotalPages:  res.TotalPages,
		CurrentPage: res.Page,
	})
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobEnvelope
// @Failure      404  {object}  messageResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if h.views != nil {
		h.views.Enqueue(domain.JobView{JobID: job.ID, Viewer: c.RealIP()})
	}

	return c.JSON(http.StatusOK, jobEnvelope{Success: true, Job: toJobResponse(job)})
}

// Create handles POST /api/jobs.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.service.CreateJob(c.Request().Context(), actor, toCreateJobInput(req))
	if err != nil {
		return err
	}
	metrics.JobsCreatedTotal.WithLabelValues(job.Category).Inc()

	return c.JSON(http.StatusCreated, jobEnvelope{
		Success: true,
		Message: "Job posted successfully!",
		Job:     toJobResponse(job),
	})
}

// Update handles PUT /api/jobs/:id.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  jobEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	job, err := h.service.UpdateJob(c.Request().Context(), actor, c.Param("id"), toJobPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobEnvelope{
		Success: true,
		Message: "Job updated successfully!",
		Job:     toJobResponse(job),
	})
}

// Delete handles DELETE /api/jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteJob(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Job deleted successfully!"})
}

// Mine handles GET /api/my-jobs.
//
// @Summary      List my jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  myJobsResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/my-jobs [get]
func (h *JobHandler) Mine(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListMyJobs(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, myJobsResponse{Success: true, Jobs: toJobResponses(jobs)})
}
