package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"dispatch-board/internal/domain"
	repoInterface "dispatch-board/internal/repository/interface"
)

// Config - collection names for the three raw datasets.
type Config struct {
	Database               string
	ReallocationCollection string
	DispatchCollection     string
	ScheduleCollection     string
}

// RecordSource - MongoDB implementation of the record source. Documents are
// decoded untyped; the schema belongs to the upstream exporters.
type RecordSource struct {
	db  *mongodrv.Database
	cfg Config
}

func NewRecordSource(client *mongodrv.Client, cfg Config) repoInterface.RecordSource {
	return &RecordSource{
		db:  client.Database(cfg.Database),
		cfg: cfg,
	}
}

func (s *RecordSource) FetchReallocationData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.fetchAll(ctx, s.cfg.ReallocationCollection)
}

func (s *RecordSource) FetchDispatchData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.fetchAll(ctx, s.cfg.DispatchCollection)
}

func (s *RecordSource) FetchScheduleData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.fetchAll(ctx, s.cfg.ScheduleCollection)
}

func (s *RecordSource) fetchAll(ctx context.Context, collection string) ([]domain.RawRecord, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var records []domain.RawRecord
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		records = append(records, domain.RawRecord(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", collection, err)
	}
	return records, nil
}
