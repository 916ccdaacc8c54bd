package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const collectionInquiries = "inquiries"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

func (r *InquiryRepository) Insert(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inq.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (r *InquiryRepository) List(ctx context.Context, branchID string) ([]domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if branchID != "" {
		filter["branch_id"] = branchID
	}

	cur, err := r.col.Find(ctx, filter, optionsFindNewestFirst("created_date"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Inquiry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
