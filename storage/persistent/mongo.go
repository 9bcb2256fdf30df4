package persistent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bloglist/storage"
	"bloglist/storage/models"
)

const (
	BlogsCollection = "blogs"
	connectTimeout  = 10 * time.Second
)

// Blog is the document shape of a blog in the blogs collection.
type Blog struct {
	Id     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author,omitempty"`
	Url    string             `bson:"url"`
	Likes  int                `bson:"likes"`
}

func (b *Blog) GetId() string {
	return b.Id.Hex()
}

func (b *Blog) ToModel() *models.Blog {
	return &models.Blog{
		Id:     b.GetId(),
		Title:  b.Title,
		Author: b.Author,
		Url:    b.Url,
		Likes:  b.Likes,
	}
}

func fromModel(blog models.Blog) Blog {
	return Blog{
		Title:  blog.Title,
		Author: blog.Author,
		Url:    blog.Url,
		Likes:  blog.Likes,
	}
}

func parseId(blogId string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(blogId)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to convert %q to Mongo object id: %w", blogId, storage.InvalidIdError)
	}
	return id, nil
}

// patchToSet builds the $set document for the non-nil fields of patch.
func patchToSet(patch models.BlogPatch) bson.M {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Url != nil {
		set["url"] = *patch.Url
	}
	if patch.Likes != nil {
		set["likes"] = *patch.Likes
	}
	return set
}

type MongoStorage struct {
	client *mongo.Client
	blogs  *mongo.Collection
}

func (s *MongoStorage) NormalizeId(blogId string) (string, error) {
	id, err := parseId(blogId)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *MongoStorage) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.blogs.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find blogs: %s, %w", err.Error(), storage.InternalError)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			log.Printf("Cursor closing failed: %s", err.Error())
		}
	}(cursor, ctx)

	var docs []Blog
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode error: %s, %w", err.Error(), storage.InternalError)
	}
	blogs := make([]models.Blog, 0, len(docs))
	for i := range docs {
		blogs = append(blogs, *docs[i].ToModel())
	}
	return blogs, nil
}

func (s *MongoStorage) GetBlog(ctx context.Context, blogId string) (*models.Blog, error) {
	id, err := parseId(blogId)
	if err != nil {
		return nil, err
	}
	var result Blog
	err = s.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no document with id %v: %w", blogId, storage.NotFoundError)
		}
		return nil, fmt.Errorf("failed to find blog: %s %w", err.Error(), storage.InternalError)
	}
	return result.ToModel(), nil
}

func (s *MongoStorage) AddBlog(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	doc := fromModel(blog)
	res, err := s.blogs.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blog: %s %w", err.Error(), storage.InternalError)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id %v: %w", res.InsertedID, storage.InternalError)
	}
	doc.Id = id
	return doc.ToModel(), nil
}

func (s *MongoStorage) UpdateBlog(ctx context.Context, blogId string, patch models.BlogPatch) (*models.Blog, error) {
	id, err := parseId(blogId)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetBlog(ctx, blogId)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(false)
	var result Blog
	err = s.blogs.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patchToSet(patch)}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no document with id %v: %w", blogId, storage.NotFoundError)
		}
		return nil, fmt.Errorf("failed to update blog: %s %w", err.Error(), storage.InternalError)
	}
	return result.ToModel(), nil
}

func (s *MongoStorage) DeleteBlog(ctx context.Context, blogId string) error {
	id, err := parseId(blogId)
	if err != nil {
		return err
	}
	if _, err = s.blogs.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete blog: %s %w", err.Error(), storage.InternalError)
	}
	return nil
}

// Clear removes every blog. Used to reset the collection between test runs.
func (s *MongoStorage) Clear(ctx context.Context) error {
	if _, err := s.blogs.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear blogs: %s %w", err.Error(), storage.InternalError)
	}
	return nil
}

func (s *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func CreateMongoStorage(dbUrl, dbName string) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dbUrl))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStorage{
		client: client,
		blogs:  client.Database(dbName).Collection(BlogsCollection),
	}, nil
}
