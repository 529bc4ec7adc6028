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

const materialsCollection = "materials"

// MaterialRepository is the MongoDB-backed ports.MaterialRepository.
type MaterialRepository struct {
	coll *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{coll: db.Collection(materialsCollection)}
}

type materialDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ManagerID    string             `bson:"manager_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	MaterialType string             `bson:"material_type"`
	UploadedBy   string             `bson:"uploaded_by"`
	Status       string             `bson:"status"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (d *materialDoc) toDomain() *domain.Material {
	return &domain.Material{
		ID:           d.ID.Hex(),
		ManagerID:    d.ManagerID,
		Title:        d.Title,
		Description:  d.Description,
		MaterialType: d.MaterialType,
		UploadedBy:   d.UploadedBy,
		Status:       domain.ContentStatus(d.Status),
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

func (r *MaterialRepository) Create(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	doc := materialDoc{
		ManagerID:    material.ManagerID,
		Title:        material.Title,
		Description:  material.Description,
		MaterialType: material.MaterialType,
		UploadedBy:   material.UploadedBy,
		Status:       string(material.Status),
		CreatedAt:    material.CreatedAt.Unix(),
		UpdatedAt:    material.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert material: %w", err)
	}

	created := *material
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*domain.Material, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMaterialNotFound
	}

	var doc materialDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MaterialRepository) List(ctx context.Context) ([]domain.Material, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer cur.Close(ctx)

	var materials []domain.Material
	for cur.Next(ctx) {
		var doc materialDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode material: %w", err)
		}
		materials = append(materials, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

func (r *MaterialRepository) Update(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	oid, err := primitive.ObjectIDFromHex(material.ID)
	if err != nil {
		return nil, domain.ErrMaterialNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":         material.Title,
		"description":   material.Description,
		"material_type": material.MaterialType,
		"status":        string(material.Status),
		"updated_at":    nowUnix(),
	}}

	var doc materialDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("update material: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMaterialNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}
