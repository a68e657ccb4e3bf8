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

const collectionIdentities = "users"

// IdentityRepository implements ports.IdentityRepository using MongoDB.
type IdentityRepository struct {
	col *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(collectionIdentities)}
}

type identityDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Phone      string             `bson:"phone"`
	Email      string             `bson:"email,omitempty"`
	Password   string             `bson:"password"`
	Role       string             `bson:"role"`
	Location   string             `bson:"location"`
	IsVerified bool               `bson:"isVerified"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
	LastLogin  time.Time          `bson:"lastLogin"`
}

func (d identityDoc) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         d.Role,
		Location:     d.Location,
		IsVerified:   d.IsVerified,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
		LastLogin:    d.LastLogin.UTC(),
	}
}

func (r *IdentityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByPhoneOrEmail matches the phone, or the email when one is given.
func (r *IdentityRepository) FindByPhoneOrEmail(ctx context.Context, phone, email string) (*domain.Identity, error) {
	if email == "" {
		return r.FindByPhone(ctx, phone)
	}
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"phone": phone},
		bson.M{"email": email},
	}})
}

func (r *IdentityRepository) FindByPhone(ctx context.Context, phone string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// Insert stores a new identity. The unique indexes on phone and email turn a
// concurrent duplicate registration into ErrDuplicateIdentity.
func (r *IdentityRepository) Insert(ctx context.Context, identity *domain.Identity) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := identityDoc{
		Name:       identity.Name,
		Phone:      identity.Phone,
		Email:      identity.Email,
		Password:   identity.PasswordHash,
		Role:       identity.Role,
		Location:   identity.Location,
		IsVerified: identity.IsVerified,
		CreatedAt:  identity.CreatedAt,
		UpdatedAt:  identity.UpdatedAt,
		LastLogin:  identity.LastLogin,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateIdentity
		}
		return "", fmt.Errorf("insert identity: %w", err)
	}
	return insertedHex(res), nil
}

func (r *IdentityRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrIdentityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"lastLogin": at.UTC()}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// EnsureIndexes creates the unique phone index and a unique email index that
// only covers documents carrying an email.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
		},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("identity indexes: %w", err)
	}
	return nil
}
