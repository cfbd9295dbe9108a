package ledger

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ankit/temple-ledger-go/access"
	"github.com/ankit/temple-ledger-go/models"
)

// MongoStore persists one resource kind in its own collection. Ownership
// scoping for updates rides in the query filter so the read-modify-write is a
// single atomic findOneAndUpdate.
type MongoStore struct {
	col  *mongo.Collection
	kind Kind
}

func NewMongoStore(db *mongo.Database, kind Kind) *MongoStore {
	return &MongoStore{col: db.Collection(kind.Collection), kind: kind}
}

func (s *MongoStore) Kind() Kind { return s.kind }

func (s *MongoStore) Create(ctx context.Context, raw map[string]any, owner access.Identity) (models.Record, error) {
	fields, err := Validate(s.kind, raw)
	if err != nil {
		return models.Record{}, err
	}

	record := newRecord(s.kind, fields, owner, time.Now())
	record.ID = primitive.NewObjectID()

	if _, err := s.col.InsertOne(ctx, record); err != nil {
		return models.Record{}, storageErr(err)
	}
	return record, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]models.Record, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storageErr(err)
	}

	var records []models.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, storageErr(err)
	}
	return records, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, invalidf("invalid record id")
	}

	var record models.Record
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Record{}, ErrNotFoundOrUnauthorized
	}
	if err != nil {
		return models.Record{}, storageErr(err)
	}
	return record, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, raw map[string]any, requester access.Identity) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, invalidf("invalid record id")
	}

	fields, err := Validate(s.kind, raw)
	if err != nil {
		return models.Record{}, err
	}

	pending, status := Derive(fields.TotalAmount, fields.PaidAmount)
	update := bson.M{"$set": bson.M{
		"counterparty":   fields.Counterparty,
		"label":          fields.Label,
		"occurred_on":    fields.OccurredOn,
		"total_amount":   fields.TotalAmount,
		"paid_amount":    fields.PaidAmount,
		"pending_amount": pending,
		"status":         status,
		"contact":        fields.Contact,
		"receipt_id":     fields.ReceiptID,
		"payment_mode":   fields.PaymentMode,
		"updated_at":     time.Now(),
	}}

	// createdBy rides in the filter: a mismatch looks identical to a missing
	// record, which is what ErrNotFoundOrUnauthorized promises.
	filter := bson.M{"_id": oid, "created_by": requester.Username}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Record
	err = s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Record{}, ErrNotFoundOrUnauthorized
	}
	if err != nil {
		return models.Record{}, storageErr(err)
	}
	return updated, nil
}

func (s *MongoStore) ClearAll(ctx context.Context, requesterRole string) (int64, error) {
	if requesterRole != models.RoleAdmin {
		return 0, access.ErrForbidden
	}
	res, err := s.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, storageErr(err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Summarize(ctx context.Context) (models.Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
			{Key: "paidAmount", Value: bson.D{{Key: "$sum", Value: "$paid_amount"}}},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Summary{}, storageErr(err)
	}

	var groups []struct {
		Status      string  `bson:"_id"`
		Count       int64   `bson:"count"`
		TotalAmount float64 `bson:"totalAmount"`
		PaidAmount  float64 `bson:"paidAmount"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return models.Summary{}, storageErr(err)
	}

	var summary models.Summary
	for _, g := range groups {
		summary.TotalRecords += g.Count
		summary.TotalAmount += g.TotalAmount
		switch g.Status {
		case models.StatusCompleted:
			summary.CompletedCount += g.Count
			summary.CompletedAmount += g.PaidAmount
		case models.StatusPending:
			summary.PendingCount += g.Count
		}
	}
	return summary, nil
}

func (s *MongoStore) SetReceiptURL(ctx context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return invalidf("invalid record id")
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"receipt_url": url,
		"updated_at":  time.Now(),
	}})
	if err != nil {
		return storageErr(err)
	}
	return nil
}
