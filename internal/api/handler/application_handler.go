package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kazimashinani/jobboard/internal/api/metrics"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /api/jobs/:id/apply.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true   "Job id"
// @Param        body  body      applyRequest  false  "Cover message"
// @Success      201   {object}  applicationEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	app, err := h.service.Apply(c.Request().Context(), actor, c.Param("id"), req.Message)
	if err != nil {
		return err
	}
	metrics.ApplicationsSubmittedTotal.Inc()

	return c.JSON(http.StatusCreated, applicationEnvelope{
		Success:     true,
		Message:     "Application submitted successfully!",
		Application: toApplicationResponse(app),
	})
}

// ListForJob handles GET /api/jobs/:id/applications.
//
// @Summary      List applications for one of my jobs
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  applicationsResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListForJob(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Success: true, Applications: toApplicationResponses(apps)})
}

// Mine handles GET /api/my-applications.
//
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/my-applications [get]
func (h *ApplicationHandler) Mine(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Success: true, Applications: toApplicationResponses(apps)})
}

// UpdateStatus handles PATCH /api/applications/:id.
//
// @Summary      Accept or reject an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      updateApplicationRequest  true  "New status"
// @Success      200   {object}  applicationEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/applications/{id} [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationEnvelope{
		Success:     true,
		Message:     "Application updated successfully!",
		Application: toApplicationResponse(app),
	})
}
