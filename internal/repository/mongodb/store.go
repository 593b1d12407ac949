// Package mongodb implements the repositories on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/config"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

const (
	contactCollection = "contact"
	userCollection    = "users"
)

type Store struct {
	db       *mongo.Database
	contacts *ContactRepository
	users    *UserRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:       db,
		contacts: NewContactRepository(db),
		users:    NewUserRepository(db),
	}
}

// Open connects to cfg.URI, pings the primary and ensures indexes exist.
func Open(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to MongoDB", zap.String("database", cfg.Database))
	return NewStore(db), nil
}

// EnsureIndexes creates the unique phone index on users and a lookup index
// on contact.phone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_phone_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = db.Collection(contactCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("contact_phone"),
	})
	if err != nil {
		return fmt.Errorf("create contact index: %w", err)
	}
	return nil
}

func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Users() repository.UserRepository { return s.users }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
