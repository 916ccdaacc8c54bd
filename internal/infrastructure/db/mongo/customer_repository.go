package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const (
	collectionCustomers = "customers"
	collectionComments  = "customer_comments"
)

type CustomerRepository struct {
	customers *mongo.Collection
	comments  *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		customers: db.Collection(collectionCustomers),
		comments:  db.Collection(collectionComments),
	}
}

func (r *CustomerRepository) Insert(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.customers.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.customers.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.customers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.customers.FindOne(ctx, bson.M{"contact": phone}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns the whole collection, newest first, optionally scoped to a
// branch. There is no server-side pagination: the console slices in memory.
func (r *CustomerRepository) List(ctx context.Context, branchID string) ([]domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if branchID != "" {
		filter["branch_id"] = branchID
	}

	opts := optionsFindNewestFirst("created_date")
	cur, err := r.customers.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerRepository) InsertComment(ctx context.Context, comment *domain.CustomerComment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	comment.ID = primitive.NewObjectID().Hex()
	_, err := r.comments.InsertOne(ctx, comment)
	return err
}

func (r *CustomerRepository) ListComments(ctx context.Context, customerID string) ([]domain.CustomerComment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.comments.Find(ctx, bson.M{"customer_id": customerID}, optionsFindNewestFirst("created_date"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.CustomerComment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the customer collection indexes.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "contact", Value: 1}}},
		{Keys: bson.D{{Key: "branch_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_date", Value: -1}}},
	}

	_, err := r.customers.Indexes().CreateMany(ctx, indexes)
	return err
}
