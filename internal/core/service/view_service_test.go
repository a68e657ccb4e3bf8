package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

type stubViewDedup struct {
	seen map[string]bool
	err  error
}

func (d *stubViewDedup) FirstView(_ context.Context, jobID, viewer string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	key := jobID + ":" + viewer
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func TestViewService_CountsOncePerViewer(t *testing.T) {
	jobs := newStubJobRepo()
	job := jobs.seed(domain.Job{Title: "Guard", IsActive: true})
	svc := NewViewService(jobs, &stubViewDedup{seen: map[string]bool{}}, discardLogger)

	for i := 0; i < 3; i++ {
		if _, err := svc.Record(context.Background(), domain.JobView{JobID: job.ID, Viewer: "10.0.0.1"}); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}
	counted, err := svc.Record(context.Background(), domain.JobView{JobID: job.ID, Viewer: "10.0.0.2"})
	if err != nil || !counted {
		t.Fatalf("second viewer must be counted: counted=%v err=%v", counted, err)
	}

	if views := jobs.byID[job.ID].Views; views != 2 {
		t.Fatalf("expected 2 views, got %d", views)
	}
}

func TestViewService_DedupFailureStillCounts(t *testing.T) {
	jobs := newStubJobRepo()
	job := jobs.seed(domain.Job{Title: "Guard", IsActive: true})
	svc := NewViewService(jobs, &stubViewDedup{err: errors.New("redis down")}, discardLogger)

	counted, err := svc.Record(context.Background(), domain.JobView{JobID: job.ID, Viewer: "10.0.0.1"})
	if err != nil || !counted {
		t.Fatalf("expected view counted, got counted=%v err=%v", counted, err)
	}
	if jobs.byID[job.ID].Views != 1 {
		t.Fatalf("expected 1 view")
	}
}

func TestViewService_MissingJob(t *testing.T) {
	svc := NewViewService(newStubJobRepo(), &stubViewDedup{seen: map[string]bool{}}, discardLogger)

	_, err := svc.Record(context.Background(), domain.JobView{JobID: stubID(1), Viewer: "10.0.0.1"})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
