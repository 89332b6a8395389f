package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BlogsCollection = "blogs"

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindMostLiked(ctx context.Context, limit int64) ([]models.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddComment(ctx context.Context, blogID primitive.ObjectID, comment models.Comment) (*models.Blog, error)
	UpdateComment(ctx context.Context, blogID, commentID primitive.ObjectID, content string) (*models.Blog, error)
	RemoveComment(ctx context.Context, blogID, commentID primitive.ObjectID) (*models.Blog, error)
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type MongoBlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{collection: db.Collection(BlogsCollection)}
}

func (r *MongoBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	now := time.Now().UTC()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Comments == nil {
		blog.Comments = []models.Comment{}
	}
	if _, err := r.collection.InsertOne(ctx, blog); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *MongoBlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find blog %s: %w", id.Hex(), err)
	}
	return &blog, nil
}

func (r *MongoBlogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *MongoBlogRepository) FindMostLiked(ctx context.Context, limit int64) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "likes", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoBlogRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.UpdateBlogRequest) (*models.Blog, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *MongoBlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepository) AddComment(ctx context.Context, blogID primitive.ObjectID, comment models.Comment) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": blogID},
		bson.M{"$push": bson.M{"comments": comment}, "$set": bson.M{"updatedAt": time.Now().UTC()}},
	)
}

func (r *MongoBlogRepository) UpdateComment(ctx context.Context, blogID, commentID primitive.ObjectID, content string) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": blogID, "comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.content": content, "updatedAt": time.Now().UTC()}},
	)
}

func (r *MongoBlogRepository) RemoveComment(ctx context.Context, blogID, commentID primitive.ObjectID) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": blogID, "comments._id": commentID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}, "$set": bson.M{"updatedAt": time.Now().UTC()}},
	)
}

func (r *MongoBlogRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"likes": 1}})
}

func (r *MongoBlogRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoBlogRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoBlogRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &blog, nil
}

func (r *MongoBlogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Blog, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]models.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}
