package mongocatalog

import (
	"context"
	"errors"
	"fmt"

	domcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Repository persists product records in a MongoDB collection. Documents are
// keyed by the service-generated product id, and SKU uniqueness is enforced
// by a unique index rather than an application-level pre-check, so concurrent
// creates with one SKU cannot both succeed.
type Repository struct {
	coll *mongo.Collection
}

var _ domcatalog.Repository = (*Repository)(nil)

func New(db *mongo.Database, collection string) *Repository {
	return &Repository{coll: db.Collection(collection)}
}

type productDoc struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	SKU         string  `bson:"sku"`
	Description string  `bson:"description,omitempty"`
	Price       float64 `bson:"price"`
	Category    string  `bson:"category,omitempty"`
	ImageURL    string  `bson:"imageUrl,omitempty"`
}

func toDoc(p domcatalog.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

func (d productDoc) toProduct() domcatalog.Product {
	return domcatalog.Product{
		ID:          d.ID,
		Name:        d.Name,
		SKU:         d.SKU,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
	}
}

// EnsureIndexes creates the unique sku index and the category index.
// Idempotent; safe to run at every startup.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("mongocatalog: ensure indexes: %w", err)
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context, limit int) ([]domcatalog.Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongocatalog: find all: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongocatalog: decode: %w", err)
	}

	products := make([]domcatalog.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toProduct())
	}
	return products, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (domcatalog.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domcatalog.Product{}, domcatalog.ErrNotFound
		}
		return domcatalog.Product{}, fmt.Errorf("mongocatalog: find %s: %w", id, err)
	}
	return doc.toProduct(), nil
}

func (r *Repository) Insert(ctx context.Context, p domcatalog.Product) error {
	_, err := r.coll.InsertOne(ctx, toDoc(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domcatalog.ErrDuplicateSKU
		}
		return fmt.Errorf("mongocatalog: insert: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id string, u domcatalog.Update) (domcatalog.Product, error) {
	set := bson.D{}
	appendSet := func(key string, v any) {
		set = append(set, bson.E{Key: key, Value: v})
	}
	if u.Name != nil {
		appendSet("name", *u.Name)
	}
	if u.SKU != nil {
		appendSet("sku", *u.SKU)
	}
	if u.Description != nil {
		appendSet("description", *u.Description)
	}
	if u.Price != nil {
		appendSet("price", *u.Price)
	}
	if u.Category != nil {
		appendSet("category", *u.Category)
	}
	if u.ImageURL != nil {
		appendSet("imageUrl", *u.ImageURL)
	}
	if len(set) == 0 {
		return domcatalog.Product{}, domcatalog.ErrNoFields
	}

	var doc productDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domcatalog.Product{}, domcatalog.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return domcatalog.Product{}, domcatalog.ErrDuplicateSKU
		}
		return domcatalog.Product{}, fmt.Errorf("mongocatalog: update %s: %w", id, err)
	}
	return doc.toProduct(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("mongocatalog: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domcatalog.ErrNotFound
	}
	return nil
}

// Ping answers the dependency-health probe with a primary round-trip.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongocatalog: ping: %w", err)
	}
	return nil
}
