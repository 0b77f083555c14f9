package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Report is one user flagging one freet or reply. The (reporter, freet)
// pair is unique.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID int64              `bson:"reporter_id" json:"reporter_id"`
	FreetID    int64              `bson:"freet_id" json:"freet_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

type ReportStorage struct {
	collection *mongo.Collection
}

func NewReportStorage(mongoClient *MongoClient) *ReportStorage {
	collection := mongoClient.Database.Collection("reports")

	// Unique index enforcing one report per (reporter, freet).
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "reporter_id", Value: 1}, {Key: "freet_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, indexModel)

	return &ReportStorage{collection: collection}
}

func (rs *ReportStorage) CreateReport(ctx context.Context, report *Report) error {
	report.CreatedAt = time.Now()
	result, err := rs.collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("insert report failed: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

func (rs *ReportStorage) ExistsReport(ctx context.Context, reporterID, freetID int64) (bool, error) {
	count, err := rs.collection.CountDocuments(ctx, bson.M{
		"reporter_id": reporterID,
		"freet_id":    freetID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rs *ReportStorage) ListByFreet(ctx context.Context, freetID int64) ([]*Report, error) {
	cursor, err := rs.collection.Find(ctx, bson.M{"freet_id": freetID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (rs *ReportStorage) CountByFreet(ctx context.Context, freetID int64) (int64, error) {
	return rs.collection.CountDocuments(ctx, bson.M{"freet_id": freetID})
}

func (rs *ReportStorage) DeleteReportsByFreet(ctx context.Context, freetID int64) error {
	_, err := rs.collection.DeleteMany(ctx, bson.M{"freet_id": freetID})
	return err
}

func (rs *ReportStorage) DeleteReportsByReporter(ctx context.Context, reporterID int64) error {
	_, err := rs.collection.DeleteMany(ctx, bson.M{"reporter_id": reporterID})
	return err
}
