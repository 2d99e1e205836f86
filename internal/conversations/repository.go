package conversations

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "conversation_messages"

// Message is one private message in an account's conversation with a counterpart.
type Message struct {
	AccountID   string    `bson:"account_id" json:"-"`
	Counterpart string    `bson:"counterpart" json:"counterpart"`
	MessageID   string    `bson:"message_id" json:"message_id"`
	Body        string    `bson:"body" json:"body"`
	Author      string    `bson:"author" json:"author"`
	Recipient   string    `bson:"recipient" json:"recipient"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	ParentID    string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Sentiment   string    `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	SyncedAt    time.Time `bson:"synced_at" json:"-"`
}

// Summary describes one conversation for listing.
type Summary struct {
	Counterpart   string    `bson:"_id" json:"counterpart"`
	LastMessageAt time.Time `bson:"last_message_at" json:"last_message_at"`
	LastBody      string    `bson:"last_body" json:"last_body"`
	LastAuthor    string    `bson:"last_author" json:"last_author"`
	MessageCount  int       `bson:"message_count" json:"message_count"`
}

// Repository is the MongoDB-backed conversation log
type Repository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
		now:        time.Now,
	}
}

// EnsureIndexes creates the unique key every upsert relies on
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "account_id", Value: 1},
				{Key: "counterpart", Value: 1},
				{Key: "message_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("conversation_message_key"),
		},
		{
			Keys: bson.D{
				{Key: "account_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("account_recent"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	return nil
}

// Upsert merges msg into the log keyed by (account, counterpart, message id).
// Empty parent id and sentiment never overwrite stored values. Reports whether the message was new.
func (r *Repository) Upsert(ctx context.Context, msg Message) (bool, error) {
	filter := bson.M{
		"account_id":  msg.AccountID,
		"counterpart": msg.Counterpart,
		"message_id":  msg.MessageID,
	}

	setFields := bson.M{
		"body":       msg.Body,
		"author":     msg.Author,
		"recipient":  msg.Recipient,
		"created_at": msg.CreatedAt.UTC(),
		"updated_at": r.now().UTC(),
	}
	if msg.ParentID != "" {
		setFields["parent_id"] = msg.ParentID
	}
	if msg.Sentiment != "" {
		setFields["sentiment"] = msg.Sentiment
	}

	update := bson.M{
		"$set": setFields,
		"$setOnInsert": bson.M{
			"synced_at": r.now().UTC(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert message: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

// ListConversations groups an account's messages by counterpart, most recent conversation first
func (r *Repository) ListConversations(ctx context.Context, accountID string) ([]Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"account_id": accountID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$counterpart"},
			{Key: "last_message_at", Value: bson.M{"$first": "$created_at"}},
			{Key: "last_body", Value: bson.M{"$first": "$body"}},
			{Key: "last_author", Value: bson.M{"$first": "$author"}},
			{Key: "message_count", Value: bson.M{"$sum": 1}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_message_at", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate conversations: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []Summary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return summaries, nil
}

// ListMessages returns up to limit messages of one conversation in chronological order
func (r *Repository) ListMessages(ctx context.Context, accountID, counterpart string, limit int64) ([]Message, error) {
	filter := bson.M{
		"account_id":  accountID,
		"counterpart": counterpart,
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}
