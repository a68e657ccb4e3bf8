package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

const collectionApplications = "applications"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications), now: time.Now}
}

type applicantDoc struct {
	Name     string `bson:"name"`
	Phone    string `bson:"phone"`
	Location string `bson:"location"`
}

type applicationDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	JobID      primitive.ObjectID `bson:"jobId"`
	EmployeeID primitive.ObjectID `bson:"employeeId"`
	EmployerID primitive.ObjectID `bson:"employerId"`
	Applicant  applicantDoc       `bson:"applicantDetails"`
	Status     string             `bson:"status"`
	Message    string             `bson:"message,omitempty"`
	AppliedAt  time.Time          `bson:"appliedAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d applicationDoc) toDomain() *domain.Application {
	return &domain.Application{
		ID:         d.ID.Hex(),
		JobID:      d.JobID.Hex(),
		EmployeeID: d.EmployeeID.Hex(),
		EmployerID: d.EmployerID.Hex(),
		Applicant: domain.Applicant{
			Name:     d.Applicant.Name,
			Phone:    d.Applicant.Phone,
			Location: d.Applicant.Location,
		},
		Status:    domain.ApplicationStatus(d.Status),
		Message:   d.Message,
		AppliedAt: d.AppliedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Create stores app. The unique (jobId, employeeId) index reports a second
// application as ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (string, error) {
	jobID, ok1 := objectID(app.JobID)
	employeeID, ok2 := objectID(app.EmployeeID)
	employerID, ok3 := objectID(app.EmployerID)
	if !ok1 || !ok2 || !ok3 {
		return "", fmt.Errorf("create application: invalid reference id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := applicationDoc{
		JobID:      jobID,
		EmployeeID: employeeID,
		EmployerID: employerID,
		Applicant: applicantDoc{
			Name:     app.Applicant.Name,
			Phone:    app.Applicant.Phone,
			Location: app.Applicant.Location,
		},
		Status:    string(app.Status),
		Message:   app.Message,
		AppliedAt: app.AppliedAt,
		UpdatedAt: app.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrAlreadyApplied
		}
		return "", fmt.Errorf("insert application: %w", err)
	}
	return insertedHex(res), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, jobID, employeeID string) (bool, error) {
	job, ok1 := objectID(jobID)
	emp, ok2 := objectID(employeeID)
	if !ok1 || !ok2 {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"jobId": job, "employeeId": emp}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count applications: %w", err)
	}
	return n > 0, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	return r.listBy(ctx, "jobId", jobID)
}

func (r *ApplicationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Application, error) {
	return r.listBy(ctx, "employeeId", employeeID)
}

func (r *ApplicationRepository) listBy(ctx context.Context, field, id string) ([]*domain.Application, error) {
	oid, ok := objectID(id)
	if !ok {
		return []*domain.Application{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{field: oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]*domain.Application, 0)
	for cur.Next(ctx) {
		var doc applicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": r.now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc applicationDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "employeeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "appliedAt", Value: -1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("application indexes: %w", err)
	}
	return nil
}
