package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

const questsCollection = "quests"

// QuestRepository is the MongoDB-backed ports.QuestRepository.
type QuestRepository struct {
	coll *mongo.Collection
}

func NewQuestRepository(db *mongo.Database) *QuestRepository {
	return &QuestRepository{coll: db.Collection(questsCollection)}
}

type questDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MaterialID string             `bson:"material_id"`
	QuizID     string             `bson:"quiz_id,omitempty"`
	ActivityID string             `bson:"activity_id,omitempty"`
	SkillType  string             `bson:"skill_type"`
	LevelOrder int                `bson:"level_order"`
	Status     string             `bson:"status"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (d *questDoc) toDomain() *domain.Quest {
	return &domain.Quest{
		ID:         d.ID.Hex(),
		MaterialID: d.MaterialID,
		QuizID:     d.QuizID,
		ActivityID: d.ActivityID,
		SkillType:  d.SkillType,
		LevelOrder: d.LevelOrder,
		Status:     domain.ContentStatus(d.Status),
		CreatedAt:  unixToTime(d.CreatedAt),
		UpdatedAt:  unixToTime(d.UpdatedAt),
	}
}

func (r *QuestRepository) Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	doc := questDoc{
		MaterialID: quest.MaterialID,
		QuizID:     quest.QuizID,
		ActivityID: quest.ActivityID,
		SkillType:  quest.SkillType,
		LevelOrder: quest.LevelOrder,
		Status:     string(quest.Status),
		CreatedAt:  quest.CreatedAt.Unix(),
		UpdatedAt:  quest.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quest: %w", err)
	}

	created := *quest
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *QuestRepository) FindByID(ctx context.Context, id string) (*domain.Quest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestNotFound
	}

	var doc questDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("find quest: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *QuestRepository) List(ctx context.Context) ([]domain.Quest, error) {
	// Ordered by skill progression, matching how clients render quests.
	opts := options.Find().SetSort(bson.D{{Key: "level_order", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer cur.Close(ctx)

	var quests []domain.Quest
	for cur.Next(ctx) {
		var doc questDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode quest: %w", err)
		}
		quests = append(quests, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	return quests, nil
}

func (r *QuestRepository) Update(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	oid, err := primitive.ObjectIDFromHex(quest.ID)
	if err != nil {
		return nil, domain.ErrQuestNotFound
	}

	update := bson.M{"$set": bson.M{
		"skill_type":  quest.SkillType,
		"level_order": quest.LevelOrder,
		"status":      string(quest.Status),
		"updated_at":  nowUnix(),
	}}

	var doc questDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("update quest: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *QuestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete quest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}
