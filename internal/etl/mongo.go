package etl

import (
	"context"
	"time"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/logger"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CountryCountsCollection = "country_counts"

// MongoReportLoader mirrors the report into MongoDB, one document per
// country keyed by the country name.
type MongoReportLoader struct {
	Client     *mongo.Client
	Database   string
	Collection string
	RunID      string
}

func NewMongoReportLoader(client *mongo.Client, database, runID string) *MongoReportLoader {
	return &MongoReportLoader{
		Client:     client,
		Database:   database,
		Collection: CountryCountsCollection,
		RunID:      runID,
	}
}

func (m *MongoReportLoader) Load(ctx context.Context, counts []models.CountryCount) error {
	writes := buildCountWrites(counts, m.RunID, time.Now().UTC())
	if len(writes) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	coll := m.Client.Database(m.Database).Collection(m.Collection)
	res, err := coll.BulkWrite(ctx, writes)
	if err != nil {
		return err
	}
	logger.Infof("Mongo BulkWrite: Match %d, Mod %d, Upsert %d", res.MatchedCount, res.ModifiedCount, res.UpsertedCount)
	return nil
}

func buildCountWrites(counts []models.CountryCount, runID string, now time.Time) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(counts))
	for _, c := range counts {
		filter := bson.M{"_id": c.Country}
		update := bson.M{"$set": bson.M{
			"count":      c.Count,
			"run_id":     runID,
			"updated_at": now,
		}}
		writes = append(writes, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
	}
	return writes
}
