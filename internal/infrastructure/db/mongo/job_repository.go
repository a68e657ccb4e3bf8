package mongo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs), now: time.Now}
}

type jobDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title"`
	Description  string               `bson:"description"`
	Location     string               `bson:"location"`
	Category     string               `bson:"category"`
	Phone        string               `bson:"phone"`
	WhatsApp     string               `bson:"whatsapp,omitempty"`
	BusinessType string               `bson:"businessType"`
	EmployerID   primitive.ObjectID   `bson:"employerId"`
	EmployerName string               `bson:"employerName"`
	Salary       string               `bson:"salary,omitempty"`
	Requirements []string             `bson:"requirements"`
	IsActive     bool                 `bson:"isActive"`
	Applicants   []primitive.ObjectID `bson:"applicants"`
	Views        int64                `bson:"views"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func (d jobDoc) toDomain() *domain.Job {
	requirements := d.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return &domain.Job{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Location:     d.Location,
		Category:     d.Category,
		Phone:        d.Phone,
		WhatsApp:     d.WhatsApp,
		BusinessType: d.BusinessType,
		EmployerID:   d.EmployerID.Hex(),
		EmployerName: d.EmployerName,
		Salary:       d.Salary,
		Requirements: requirements,
		IsActive:     d.IsActive,
		Applicants:   hexes(d.Applicants),
		Views:        d.Views,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (string, error) {
	employerID, ok := objectID(job.EmployerID)
	if !ok {
		return "", fmt.Errorf("create job: invalid employer id %q", job.EmployerID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		Category:     job.Category,
		Phone:        job.Phone,
		WhatsApp:     job.WhatsApp,
		BusinessType: job.BusinessType,
		EmployerID:   employerID,
		EmployerName: job.EmployerName,
		Salary:       job.Salary,
		Requirements: job.Requirements,
		IsActive:     job.IsActive,
		Applicants:   objectIDs(job.Applicants),
		Views:        job.Views,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert job: %w", err)
	}
	return insertedHex(res), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// listFilter builds the query for active jobs. User input is escaped before
// it is used as a case-insensitive regex.
func listFilter(f ports.ListJobsFilter) bson.M {
	filter := bson.M{"isActive": true}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Location != "" {
		filter["location"] = containsPattern(f.Location)
	}
	if f.Search != "" {
		re := containsPattern(f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"businessType": re},
		}
	}
	return filter
}

func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

func (r *JobRepository) List(ctx context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := listFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(pageSkip(f.Page, f.Limit)).
		SetLimit(int64(f.Limit))

	jobs, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// pageSkip returns how many documents precede page. It saturates instead of
// overflowing.
func pageSkip(page, limit int) int64 {
	if page < 1 || limit < 1 {
		return 0
	}
	p, l := int64(page-1), int64(limit)
	if p > math.MaxInt64/l {
		return math.MaxInt64
	}
	return p * l
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	oid, ok := objectID(employerID)
	if !ok {
		return []*domain.Job{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"employerId": oid}, options.Find().SetSort(newestFirst))
}

func (r *JobRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Job, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

// patchSet converts the non-nil fields of p into a $set document.
func patchSet(p domain.JobPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now.UTC()}
	strField := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	strField("title", p.Title)
	strField("description", p.Description)
	strField("location", p.Location)
	strField("category", p.Category)
	strField("phone", p.Phone)
	strField("whatsapp", p.WhatsApp)
	strField("businessType", p.BusinessType)
	strField("salary", p.Salary)
	if p.Requirements != nil {
		set["requirements"] = p.Requirements
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	return set
}

func (r *JobRepository) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc jobDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patchSet(patch, r.now())}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// AddApplicant adds employeeID to the job's applicants set.
func (r *JobRepository) AddApplicant(ctx context.Context, jobID, employeeID string) error {
	return r.updateByID(ctx, jobID, func(oid primitive.ObjectID) (bson.M, error) {
		emp, ok := objectID(employeeID)
		if !ok {
			return nil, fmt.Errorf("add applicant: invalid employee id %q", employeeID)
		}
		return bson.M{"$addToSet": bson.M{"applicants": emp}}, nil
	})
}

func (r *JobRepository) IncrementViews(ctx context.Context, jobID string) error {
	return r.updateByID(ctx, jobID, func(primitive.ObjectID) (bson.M, error) {
		return bson.M{"$inc": bson.M{"views": 1}}, nil
	})
}

func (r *JobRepository) updateByID(ctx context.Context, id string, build func(primitive.ObjectID) (bson.M, error)) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrJobNotFound
	}
	update, err := build(oid)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by listing and by the employer view.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "employerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("job indexes: %w", err)
	}
	return nil
}
