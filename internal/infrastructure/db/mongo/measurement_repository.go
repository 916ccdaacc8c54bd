package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const collectionMeasurements = "measurement_tasks"

type MeasurementRepository struct {
	col *mongo.Collection
}

func NewMeasurementRepository(db *mongo.Database) *MeasurementRepository {
	return &MeasurementRepository{col: db.Collection(collectionMeasurements)}
}

func (r *MeasurementRepository) FindByID(ctx context.Context, id string) (*domain.MeasurementTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var task domain.MeasurementTask
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeasurementNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *MeasurementRepository) Update(ctx context.Context, task *domain.MeasurementTask) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMeasurementNotFound
	}
	return nil
}

func (r *MeasurementRepository) ListByAssignee(ctx context.Context, userID string) ([]domain.MeasurementTask, error) {
	return r.list(ctx, bson.M{"assigned_to": userID})
}

func (r *MeasurementRepository) ListByState(ctx context.Context, state domain.TaskState) ([]domain.MeasurementTask, error) {
	return r.list(ctx, bson.M{"state": string(state)})
}

func (r *MeasurementRepository) list(ctx context.Context, filter bson.M) ([]domain.MeasurementTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, optionsFindNewestFirst("created_date"))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.MeasurementTask
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
