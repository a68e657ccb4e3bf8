package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

func newApplicationFixture() (*stubJobRepo, *stubApplicationRepo, *domain.Job) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	job := jobs.seed(domain.Job{Title: "Shop attendant", EmployerID: employerX.ID, IsActive: true})
	return jobs, apps, job
}

func TestApplicationService_Apply(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)

	app, err := svc.Apply(context.Background(), employeeA, job.ID, "  I can start Monday ")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Errorf("expected pending, got %s", app.Status)
	}
	if app.EmployerID != employerX.ID || app.EmployeeID != employeeA.ID {
		t.Errorf("unexpected parties: %+v", app)
	}
	if app.Applicant.Name != "Asha" || app.Applicant.Location != "Nairobi" {
		t.Errorf("applicant snapshot missing: %+v", app.Applicant)
	}
	if app.Message != "I can start Monday" {
		t.Errorf("message not trimmed: %q", app.Message)
	}
	if got := jobs.byID[job.ID].Applicants; len(got) != 1 || got[0] != employeeA.ID {
		t.Errorf("applicant not added to job: %v", got)
	}
}

func TestApplicationService_Apply_Twice(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)

	if _, err := svc.Apply(context.Background(), employeeA, job.ID, ""); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(context.Background(), employeeA, job.ID, ""); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_Apply_InactiveOrMissingJob(t *testing.T) {
	jobs, apps, _ := newApplicationFixture()
	closed := jobs.seed(domain.Job{Title: "Closed", EmployerID: employerX.ID, IsActive: false})
	svc := NewApplicationService(jobs, apps, discardLogger)

	if _, err := svc.Apply(context.Background(), employeeA, closed.ID, ""); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for inactive job, got %v", err)
	}
	if _, err := svc.Apply(context.Background(), employeeA, stubID(7777), ""); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_EmployerCannotApply(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)

	if _, err := svc.Apply(context.Background(), employerY, job.ID, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_Apply_ApplicantListFailureIsNotFatal(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	jobs.addApplicant = errors.New("write conflict")
	svc := NewApplicationService(jobs, apps, discardLogger)

	if _, err := svc.Apply(context.Background(), employeeA, job.ID, ""); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(apps.byID) != 1 {
		t.Fatalf("application must be stored")
	}
}

func TestApplicationService_ListForJob_OwnerOnly(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)
	if _, err := svc.Apply(context.Background(), employeeA, job.ID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := svc.ListForJob(context.Background(), employerY, job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.ListForJob(context.Background(), employerY, stubID(8888)); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	list, err := svc.ListForJob(context.Background(), employerX, job.ID)
	if err != nil {
		t.Fatalf("ListForJob error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}
}

func TestApplicationService_ListMine(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)
	if _, err := svc.Apply(context.Background(), employeeA, job.ID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), employeeA)
	if err != nil {
		t.Fatalf("ListMine error: %v", err)
	}
	if len(mine) != 1 || mine[0].JobID != job.ID {
		t.Fatalf("unexpected applications: %+v", mine)
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	jobs, apps, job := newApplicationFixture()
	svc := NewApplicationService(jobs, apps, discardLogger)
	app, err := svc.Apply(context.Background(), employeeA, job.ID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), employerX, app.ID, "hired"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), employerY, app.ID, domain.ApplicationAccepted); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), employerX, stubID(9999), domain.ApplicationAccepted); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), employerX, app.ID, domain.ApplicationAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != domain.ApplicationAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
}
