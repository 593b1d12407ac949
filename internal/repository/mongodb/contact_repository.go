package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return errors.Wrap(err, "insert contact")
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c *models.Contact) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return errors.Wrap(err, "replace contact")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find contacts")
	}
	defer cursor.Close(ctx)

	contacts := make([]models.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, errors.Wrap(err, "decode contacts")
	}
	return contacts, nil
}

func (r *ContactRepository) DeleteByPhone(ctx context.Context, phone string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"phone": phone})
	if err != nil {
		return 0, errors.Wrap(err, "delete contacts")
	}
	return res.DeletedCount, nil
}
