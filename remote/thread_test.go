package remote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
	"github.com/floodwatch/floodwatch-sync-api/remote/mocks"
)

func TestThreadStore_QueryRange_EqTranslation(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	var captured bson.M
	collectionHelper.
		On("Find", mock.Anything, mock.Anything).
		Return(cursorHelper, nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(bson.M)
		})
	cursorHelper.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.DiscussionThread)
		*arg = []models.DiscussionThread{{ThreadID: "t-1", ReportID: "r-1"}}
	})
	dbHelper.On("Collection", "discussion_threads").Return(collectionHelper)

	store := remote.NewThreadStore(dbHelper)

	threads, err := store.QueryRange(context.Background(), remote.Eq("reportId", "r-1"))
	assert.NoError(t, err)
	assert.Len(t, threads, 1)
	assert.Equal(t, "r-1", captured["reportId"])
}

func TestThreadStore_Set(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.
		On("ReplaceOne", mock.Anything, bson.M{"_id": "t-1"}, mock.Anything, mock.Anything).
		Return(nil)
	dbHelper.On("Collection", "discussion_threads").Return(collectionHelper)

	store := remote.NewThreadStore(dbHelper)

	err := store.Set(context.Background(), models.DiscussionThread{ThreadID: "t-1", ReportID: "r-1"})
	assert.NoError(t, err)
	collectionHelper.AssertCalled(t, "ReplaceOne", mock.Anything, bson.M{"_id": "t-1"}, mock.Anything, mock.Anything)
}

func TestMessageStore_Increment(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.
		On("UpdateOne", mock.Anything, bson.M{"_id": "m-1"}, bson.M{"$inc": bson.M{"upvotes": 1}}).
		Return(int64(1), nil)
	dbHelper.On("Collection", "discussion_messages").Return(collectionHelper)

	store := remote.NewMessageStore(dbHelper)

	assert.NoError(t, store.Increment(context.Background(), "m-1", "upvotes", 1))
}
