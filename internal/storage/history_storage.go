package storage

import (
	"context"

	"github.com/Nithinrathna/interview-prep/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyLimit = 20

// HistoryStore persists one record per successful resume submission in
// the questionsset collection.
type HistoryStore struct {
	records *mongo.Collection
}

func NewHistoryStore(db *mongo.Database) *HistoryStore {
	return &HistoryStore{records: db.Collection("questionsset")}
}

func (s *HistoryStore) Insert(ctx context.Context, record models.HistoryRecord) error {
	_, err := s.records.InsertOne(ctx, record)
	return err
}

// Recent returns the newest records, most recent first, capped at
// historyLimit. The Mongo _id is projected away.
func (s *HistoryStore) Recent(ctx context.Context) ([]models.HistoryRecord, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"_id":       0,
			"filename":  1,
			"skills":    1,
			"questions": 1,
			"answers":   1,
			"timestamp": 1,
		}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(historyLimit)

	cursor, err := s.records.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.HistoryRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
