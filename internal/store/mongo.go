package store

import (
	"context"
	"errors"
	"time"

	"github.com/fairyhunter13/catalog-console/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials the MongoDB deployment behind uri and verifies the
// connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}
	return cli, nil
}

// MongoProducts is the Mongo-backed ProductStore. Ids are ObjectID hex
// strings assigned on insert.
type MongoProducts struct {
	col *mongo.Collection
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{col: db.Collection("products")}
}

func (s *MongoProducts) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoProducts) Insert(ctx context.Context, f model.ProductFields) (model.Product, error) {
	now := time.Now().UTC()
	p := model.Product{
		ID:        primitive.NewObjectID().Hex(),
		Name:      f.Name,
		Price:     f.Price,
		Stock:     f.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *MongoProducts) Replace(ctx context.Context, id string, f model.ProductFields) (model.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":      f.Name,
		"price":     f.Price,
		"stock":     f.Stock,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p model.Product
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, model.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *MongoProducts) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MongoOrders is the Mongo-backed OrderStore.
type MongoOrders struct {
	col *mongo.Collection
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{col: db.Collection("orders")}
}

func (s *MongoOrders) Insert(ctx context.Context, f model.OrderFields) (model.Order, error) {
	now := time.Now().UTC()
	o := model.Order{
		ID:        primitive.NewObjectID().Hex(),
		UserEmail: f.UserEmail,
		Status:    f.Status,
		Items:     f.Items,
		Total:     f.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if o.Status == "" {
		o.Status = model.OrderPending
	}
	if _, err := s.col.InsertOne(ctx, o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (s *MongoOrders) Replace(ctx context.Context, id string, f model.OrderFields) (model.Order, error) {
	update := bson.M{"$set": bson.M{
		"userEmail": f.UserEmail,
		"status":    f.Status,
		"items":     f.Items,
		"total":     f.Total,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o model.Order
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, model.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (s *MongoOrders) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
