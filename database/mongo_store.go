package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hpd-transportes/wash-registry/models"
)

const (
	CollectionWashes    = "lavagens"
	CollectionWashers   = "lavadores"
	CollectionCompanies = "empresas_externas"
)

// MongoStore keeps one client for the lifetime of the process.
type MongoStore struct {
	client    *mongo.Client
	washes    *mongo.Collection
	washers   *mongo.Collection
	companies *mongo.Collection
}

// NewMongoStore connects to uri and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewMongoStoreFromClient(client, dbName), nil
}

func NewMongoStoreFromClient(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client:    client,
		washes:    db.Collection(CollectionWashes),
		washers:   db.Collection(CollectionWashers),
		companies: db.Collection(CollectionCompanies),
	}
}

func (s *MongoStore) InsertWash(ctx context.Context, w *models.WashRecord) error {
	_, err := s.washes.InsertOne(ctx, w)
	return err
}

func (s *MongoStore) FindWashes(ctx context.Context, q WashQuery) ([]models.WashRecord, error) {
	filter := bson.M{}
	if q.ServiceDate != "" {
		filter["data"] = q.ServiceDate
	}

	opts := options.Find().
		SetLimit(int64(q.limit())).
		SetSkip(int64(q.offset()))
	switch q.Sort {
	case SortNewestFirst:
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}})
	case SortOldestFirst:
		opts.SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}})
	}

	cursor, err := s.washes.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	washes := make([]models.WashRecord, 0)
	if err := cursor.All(ctx, &washes); err != nil {
		return nil, err
	}
	return washes, nil
}

func (s *MongoStore) CountWashes(ctx context.Context) (int64, error) {
	return s.washes.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) DeleteWash(ctx context.Context, id string) (int64, error) {
	res, err := s.washes.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) InsertWasher(ctx context.Context, w *models.CustomWasher) error {
	_, err := s.washers.InsertOne(ctx, w)
	return err
}

func (s *MongoStore) FindWasherByName(ctx context.Context, name string) (*models.CustomWasher, error) {
	var washer models.CustomWasher
	if err := findOneByName(ctx, s.washers, name, &washer); err != nil {
		return nil, err
	}
	return &washer, nil
}

func (s *MongoStore) ListWashers(ctx context.Context) ([]models.CustomWasher, error) {
	washers := make([]models.CustomWasher, 0)
	if err := listByName(ctx, s.washers, &washers); err != nil {
		return nil, err
	}
	return washers, nil
}

func (s *MongoStore) InsertCompany(ctx context.Context, c *models.ExternalCompany) error {
	_, err := s.companies.InsertOne(ctx, c)
	return err
}

func (s *MongoStore) FindCompanyByName(ctx context.Context, name string) (*models.ExternalCompany, error) {
	var company models.ExternalCompany
	if err := findOneByName(ctx, s.companies, name, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *MongoStore) ListCompanies(ctx context.Context) ([]models.ExternalCompany, error) {
	companies := make([]models.ExternalCompany, 0)
	if err := listByName(ctx, s.companies, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func findOneByName(ctx context.Context, coll *mongo.Collection, name string, out interface{}) error {
	err := coll.FindOne(ctx, bson.M{"nome": name}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	return err
}

func listByName(ctx context.Context, coll *mongo.Collection, out interface{}) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "nome", Value: 1}}).
		SetLimit(MaxResults)

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
