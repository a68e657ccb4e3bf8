package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

func newTestApplication() *domain.Application {
	now := time.Now().UTC()
	return &domain.Application{
		JobID:      primitive.NewObjectID().Hex(),
		EmployeeID: primitive.NewObjectID().Hex(),
		EmployerID: primitive.NewObjectID().Hex(),
		Applicant:  domain.Applicant{Name: "Asha", Phone: "254712345678", Location: "Nairobi"},
		Status:     domain.ApplicationPending,
		AppliedAt:  now,
		UpdatedAt:  now,
	}
}

func TestApplicationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second application is rejected by the unique index", func(mt *mtest.T) {
		repo := &ApplicationRepository{col: mt.Coll, now: time.Now}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: kaziDB.applications index: jobId_1_employeeId_1",
		}))

		if _, err := repo.Create(context.Background(), newTestApplication()); !errors.Is(err, domain.ErrAlreadyApplied) {
			t.Fatalf("expected ErrAlreadyApplied, got %v", err)
		}
	})

	mt.Run("exists counts matching documents", func(mt *mtest.T) {
		repo := &ApplicationRepository{col: mt.Coll, now: time.Now}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := repo.Exists(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		if err != nil {
			t.Fatalf("Exists error: %v", err)
		}
		if !ok {
			t.Fatalf("expected application to exist")
		}
	})

	mt.Run("list by employee maps applicant details", func(mt *mtest.T) {
		repo := &ApplicationRepository{col: mt.Coll, now: time.Now}
		employee := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "jobId", Value: primitive.NewObjectID()},
			{Key: "employeeId", Value: employee},
			{Key: "employerId", Value: primitive.NewObjectID()},
			{Key: "applicantDetails", Value: bson.D{{Key: "name", Value: "Asha"}, {Key: "location", Value: "Nairobi"}}},
			{Key: "status", Value: "accepted"},
		}))

		apps, err := repo.ListByEmployee(context.Background(), employee.Hex())
		if err != nil {
			t.Fatalf("ListByEmployee error: %v", err)
		}
		if len(apps) != 1 || apps[0].Applicant.Name != "Asha" || apps[0].Status != domain.ApplicationAccepted {
			t.Fatalf("unexpected applications: %+v", apps)
		}
	})

	mt.Run("update status of missing application", func(mt *mtest.T) {
		repo := &ApplicationRepository{col: mt.Coll, now: time.Now}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), domain.ApplicationRejected)
		if !errors.Is(err, domain.ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}
