package persistence

import (
	"context"
	"errors"
	"time"

	"oko/coaching-app/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

const snapshotCollection = "state_snapshots"

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection actually works.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// snapshotDoc wraps the state tree in a single fixed-ID document; Save
// replaces it wholesale, matching the snapshot contract.
type snapshotDoc struct {
	ID      string       `bson:"_id"`
	SavedAt time.Time    `bson:"savedAt"`
	State   *store.State `bson:"state"`
}

// mongoStore implements SnapshotStore on a Mongo collection.
type mongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a SnapshotStore backed by the given database.
func NewMongoStore(db *mongo.Database) SnapshotStore {
	return &mongoStore{collection: db.Collection(snapshotCollection)}
}

func (m *mongoStore) Save(ctx context.Context, state *store.State) error {
	doc := snapshotDoc{ID: "current", SavedAt: time.Now(), State: state}
	opts := options.Replace().SetUpsert(true)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (m *mongoStore) Load(ctx context.Context) (*store.State, error) {
	var doc snapshotDoc
	err := m.collection.FindOne(ctx, bson.M{"_id": "current"}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return doc.State, nil
}
