package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

func stubID(n int) string {
	return fmt.Sprintf("%024x", n)
}

type stubIdentityRepo struct {
	byID      map[string]*domain.Identity
	seq       int
	findErr   error // if set, every Find* returns this error
	insertErr error // if set, Insert returns this error
	lastLogin map[string]time.Time
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{
		byID:      make(map[string]*domain.Identity),
		lastLogin: make(map[string]time.Time),
	}
}

func (r *stubIdentityRepo) find(match func(*domain.Identity) bool) (*domain.Identity, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (r *stubIdentityRepo) FindByPhoneOrEmail(_ context.Context, phone, email string) (*domain.Identity, error) {
	return r.find(func(u *domain.Identity) bool {
		return u.Phone == phone || (email != "" && u.Email == email)
	})
}

func (r *stubIdentityRepo) FindByPhone(_ context.Context, phone string) (*domain.Identity, error) {
	return r.find(func(u *domain.Identity) bool { return u.Phone == phone })
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	return r.find(func(u *domain.Identity) bool { return u.ID == id })
}

// Insert mirrors the unique indexes on phone and email.
func (r *stubIdentityRepo) Insert(_ context.Context, identity *domain.Identity) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	for _, u := range r.byID {
		if u.Phone == identity.Phone || (identity.Email != "" && u.Email == identity.Email) {
			return "", domain.ErrDuplicateIdentity
		}
	}
	r.seq++
	clone := *identity
	clone.ID = stubID(r.seq)
	r.byID[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubIdentityRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrIdentityNotFound
	}
	u.LastLogin = at
	r.lastLogin[id] = at
	return nil
}

type stubJobRepo struct {
	byID         map[string]*domain.Job
	seq          int
	createErr    error
	addApplicant error
	updates      int
	deleted      []string
	lastList     ports.ListJobsFilter
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) seed(job domain.Job) *domain.Job {
	r.seq++
	if job.ID == "" {
		job.ID = stubID(1000 + r.seq)
	}
	r.byID[job.ID] = &job
	return &job
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.seq++
	clone := *job
	clone.ID = stubID(1000 + r.seq)
	r.byID[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubJobRepo) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	r.lastList = f
	var matched []*domain.Job
	for _, j := range r.byID {
		if !j.IsActive {
			continue
		}
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		if f.Location != "" && !containsFold(j.Location, f.Location) {
			continue
		}
		if f.Search != "" && !containsFold(j.Title, f.Search) &&
			!containsFold(j.Description, f.Search) && !containsFold(j.BusinessType, f.Search) {
			continue
		}
		clone := *j
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].CreatedAt.After(matched[b].CreatedAt) })

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.Job{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.byID {
		if j.EmployerID == employerID {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, p domain.JobPatch) (*domain.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	r.updates++
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Category != nil {
		j.Category = *p.Category
	}
	if p.Phone != nil {
		j.Phone = *p.Phone
	}
	if p.WhatsApp != nil {
		j.WhatsApp = *p.WhatsApp
	}
	if p.BusinessType != nil {
		j.BusinessType = *p.BusinessType
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Requirements != nil {
		j.Requirements = p.Requirements
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubJobRepo) AddApplicant(_ context.Context, jobID, employeeID string) error {
	if r.addApplicant != nil {
		return r.addApplicant
	}
	j, ok := r.byID[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	for _, a := range j.Applicants {
		if a == employeeID {
			return nil
		}
	}
	j.Applicants = append(j.Applicants, employeeID)
	return nil
}

func (r *stubJobRepo) IncrementViews(_ context.Context, jobID string) error {
	j, ok := r.byID[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	j.Views++
	return nil
}

type stubApplicationRepo struct {
	byID      map[string]*domain.Application
	seq       int
	existsErr error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{byID: make(map[string]*domain.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (string, error) {
	for _, a := range r.byID {
		if a.JobID == app.JobID && a.EmployeeID == app.EmployeeID {
			return "", domain.ErrAlreadyApplied
		}
	}
	r.seq++
	clone := *app
	clone.ID = stubID(2000 + r.seq)
	r.byID[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubApplicationRepo) Exists(_ context.Context, jobID, employeeID string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, a := range r.byID {
		if a.JobID == jobID && a.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) list(match func(*domain.Application) bool) []*domain.Application {
	var out []*domain.Application
	for _, a := range r.byID {
		if match(a) {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubApplicationRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	return r.list(func(a *domain.Application) bool { return a.JobID == jobID }), nil
}

func (r *stubApplicationRepo) ListByEmployee(_ context.Context, employeeID string) ([]*domain.Application, error) {
	return r.list(func(a *domain.Application) bool { return a.EmployeeID == employeeID }), nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ---------------------------------------------------------------------------
// Identities used across tests
// ---------------------------------------------------------------------------

var (
	employerX = &domain.Identity{ID: stubID(901), Name: "Wanjiru", Role: domain.RoleEmployer, Phone: "254700000901"}
	employerY = &domain.Identity{ID: stubID(902), Name: "Otieno", Role: domain.RoleEmployer, Phone: "254700000902"}
	employeeA = &domain.Identity{ID: stubID(903), Name: "Asha", Role: domain.RoleEmployee, Phone: "254712345678", Location: "Nairobi"}
)
