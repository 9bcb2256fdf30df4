package persistent

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/storage"
	"bloglist/storage/models"
)

var ctx = context.Background()

func TestParseId(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := parseId(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "5a422aa71b54a676234d17f8a"} {
		_, err := parseId(bad)
		assert.ErrorIs(t, err, storage.InvalidIdError, bad)
	}
}

func TestPatchToSet(t *testing.T) {
	title := "new title"
	likes := 0

	set := patchToSet(models.BlogPatch{Title: &title, Likes: &likes})

	assert.Equal(t, bson.M{"title": "new title", "likes": 0}, set)
	assert.Empty(t, patchToSet(models.BlogPatch{}))
}

func TestDocumentRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	doc := fromModel(models.Blog{Id: "dropped", Title: "t", Author: "a", Url: "u", Likes: 5})
	doc.Id = id

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, id, m["_id"])
	assert.NotContains(t, m, "id")

	assert.Equal(t, &models.Blog{Id: id.Hex(), Title: "t", Author: "a", Url: "u", Likes: 5}, doc.ToModel())
}

func TestMongoStorage(t *testing.T) {
	if _, found := os.LookupEnv("MONGO_URL"); !found {
		t.Skip("MONGO_URL not set")
	}
	suite.Run(t, &MongoSuite{})
}

type MongoSuite struct {
	suite.Suite

	storage *MongoStorage
}

func (s *MongoSuite) SetupSuite() {
	dbName, found := os.LookupEnv("MONGO_DBNAME")
	if !found {
		dbName = "bloglist_test"
	}
	st, err := CreateMongoStorage(os.Getenv("MONGO_URL"), dbName)
	s.Require().NoError(err)
	s.storage = st
}

func (s *MongoSuite) TearDownSuite() {
	s.Require().NoError(s.storage.Clear(ctx))
	s.Require().NoError(s.storage.Close())
}

func (s *MongoSuite) SetupTest() {
	s.Require().NoError(s.storage.Clear(ctx))
}

func (s *MongoSuite) TestAddAndList() {
	first, err := s.storage.AddBlog(ctx, models.Blog{Title: "first", Url: "u1"})
	s.Require().NoError(err)
	_, err = s.storage.AddBlog(ctx, models.Blog{Title: "second", Url: "u2", Likes: 2})
	s.Require().NoError(err)

	blogs, err := s.storage.GetBlogs(ctx)
	s.Require().NoError(err)
	s.Require().Len(blogs, 2)
	s.Equal(first.Id, blogs[0].Id)
	s.Equal("second", blogs[1].Title)
	s.Equal(2, blogs[1].Likes)
}

func (s *MongoSuite) TestUpdate() {
	created, err := s.storage.AddBlog(ctx, models.Blog{Title: "t", Author: "a", Url: "u"})
	s.Require().NoError(err)
	likes := 10

	updated, err := s.storage.UpdateBlog(ctx, created.Id, models.BlogPatch{Likes: &likes})
	s.Require().NoError(err)
	s.Equal(10, updated.Likes)
	s.Equal("a", updated.Author)

	_, err = s.storage.UpdateBlog(ctx, primitive.NewObjectID().Hex(), models.BlogPatch{Likes: &likes})
	s.ErrorIs(err, storage.NotFoundError)

	unchanged, err := s.storage.UpdateBlog(ctx, created.Id, models.BlogPatch{})
	s.Require().NoError(err)
	s.Equal(10, unchanged.Likes)
}

func (s *MongoSuite) TestDelete() {
	created, err := s.storage.AddBlog(ctx, models.Blog{Title: "t", Url: "u"})
	s.Require().NoError(err)

	s.Require().NoError(s.storage.DeleteBlog(ctx, created.Id))
	s.NoError(s.storage.DeleteBlog(ctx, created.Id))

	_, err = s.storage.GetBlog(ctx, created.Id)
	s.ErrorIs(err, storage.NotFoundError)
	s.ErrorIs(s.storage.DeleteBlog(ctx, "malformed"), storage.InvalidIdError)
}

func TestNormalizeId(t *testing.T) {
	s := &MongoStorage{}
	id := primitive.NewObjectID()

	normalized, err := s.NormalizeId(strings.ToUpper(id.Hex()))
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), normalized)

	_, err = s.NormalizeId("not-hex")
	assert.ErrorIs(t, err, storage.InvalidIdError)
}
