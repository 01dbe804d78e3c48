package mongo

import (
	"context"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fieldName      = "name"
	fieldEmail     = "email"
	fieldPassword  = "password"
	fieldUpdatedAt = "updatedAt"
	fieldCreatedAt = "createdAt"
)

// accountDocument is the stored shape. The hash is kept under "password".
// Empty profile fields are written out so every document carries them.
type accountDocument struct {
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Location     string    `bson:"location"`
	Contact      string    `bson:"contact"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// accountRepository implements repository.AccountRepository on a MongoDB collection.
type accountRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewAccountRepository is the constructor for the MongoDB account repository.
func NewAccountRepository(collection *mongo.Collection) repository.AccountRepository {
	return &accountRepository{
		collection: collection,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var doc accountDocument
	err := repo.collection.FindOne(ctx, emailFilter(email)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return doc.toDomain(), nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := repo.now()
	doc := fromAccountDomain(account)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = now
	account.UpdatedAt = now

	return nil
}

// Update uses the driver's matched/modified counts directly. MongoDB rejects an
// empty $set, so an empty patch only checks existence.
func (repo *accountRepository) Update(ctx context.Context, email string, patch entity.AccountPatch) (repository.UpdateResult, error) {
	if patch.IsEmpty() {
		count, err := repo.collection.CountDocuments(ctx, emailFilter(email), options.Count().SetLimit(1))
		if err != nil {
			return repository.UpdateResult{}, domainerrors.NewDatabaseExecuteError(err, "failed to count account")
		}

		return repository.UpdateResult{Matched: count > 0}, nil
	}

	res, err := repo.collection.UpdateOne(ctx, changedFilter(email, patch), updateDocument(patch, repo.now()))
	if err != nil {
		return repository.UpdateResult{}, domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if res.MatchedCount > 0 {
		return repository.UpdateResult{Matched: true, Modified: res.ModifiedCount > 0}, nil
	}

	// Nothing differed, or nothing matched at all.
	count, err := repo.collection.CountDocuments(ctx, emailFilter(email), options.Count().SetLimit(1))
	if err != nil {
		return repository.UpdateResult{}, domainerrors.NewDatabaseExecuteError(err, "failed to count account")
	}

	return repository.UpdateResult{Matched: count > 0}, nil
}

func (repo *accountRepository) Delete(ctx context.Context, email string) (int64, error) {
	res, err := repo.collection.DeleteOne(ctx, emailFilter(email))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}

	return res.DeletedCount, nil
}

func (repo *accountRepository) ListExcluding(ctx context.Context, excludedName string) ([]*entity.Account, error) {
	cursor, err := repo.collection.Find(ctx, excludeNameFilter(excludedName), options.Find().
		SetProjection(bson.M{fieldPassword: 0}).
		SetSort(bson.D{{Key: fieldCreatedAt, Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode accounts")
	}

	accounts := make([]*entity.Account, 0, len(docs))
	for i := range docs {
		accounts = append(accounts, docs[i].toDomain())
	}

	return accounts, nil
}

func emailFilter(email string) bson.M {
	return bson.M{fieldEmail: email}
}

func excludeNameFilter(name string) bson.M {
	return bson.M{fieldName: bson.M{"$ne": name}}
}

// changedFilter matches the account only if at least one patched field differs,
// so an identical patch reports zero modified without rewriting updatedAt.
// A missing field counts as the empty string.
func changedFilter(email string, patch entity.AccountPatch) bson.M {
	fields := patch.Fields()
	differs := make(bson.A, 0, len(fields))
	for key, value := range fields {
		differs = append(differs, bson.M{key: differsFrom(value)})
	}

	return bson.M{fieldEmail: email, "$or": differs}
}

// differsFrom builds the condition for one patched field. $ne alone also
// matches documents without the field, so the empty string excludes null too.
func differsFrom(value any) bson.M {
	if value == "" {
		return bson.M{"$nin": bson.A{"", nil}}
	}

	return bson.M{"$ne": value}
}

func updateDocument(patch entity.AccountPatch, now time.Time) bson.M {
	set := bson.M{fieldUpdatedAt: now}
	for key, value := range patch.Fields() {
		set[key] = value
	}

	return bson.M{"$set": set}
}

func (doc *accountDocument) toDomain() *entity.Account {
	return &entity.Account{
		Name:         doc.Name,
		Email:        doc.Email,
		Location:     doc.Location,
		Contact:      doc.Contact,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *accountDocument {
	return &accountDocument{
		Name:         account.Name,
		Email:        account.Email,
		Location:     account.Location,
		Contact:      account.Contact,
		PasswordHash: account.PasswordHash,
	}
}
