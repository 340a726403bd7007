package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type document struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
	Tags []string      `bson:"tags,omitempty"`
}

func TestSplitID(t *testing.T) {
	existing := bson.NewObjectID()

	tests := []struct {
		name       string
		doc        any
		wantID     any
		wantFields bson.D
	}{
		{
			name:       "new document has no id",
			doc:        document{Name: "Todo"},
			wantID:     nil,
			wantFields: bson.D{{Key: "name", Value: "Todo"}},
		},
		{
			name:       "existing document keeps its id out of the fields",
			doc:        document{ID: existing, Name: "Todo", Tags: []string{"a"}},
			wantID:     existing,
			wantFields: bson.D{{Key: "name", Value: "Todo"}, {Key: "tags", Value: bson.A{"a"}}},
		},
		{
			name:       "string identifiers are kept",
			doc:        bson.M{"_id": "legacy-1"},
			wantID:     "legacy-1",
			wantFields: bson.D{},
		},
		{
			name:       "empty string identifier means insert",
			doc:        bson.D{{Key: "_id", Value: ""}, {Key: "name", Value: "x"}},
			wantID:     nil,
			wantFields: bson.D{{Key: "name", Value: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, fields, err := splitID(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestSplitID_RejectsNonDocuments(t *testing.T) {
	_, _, err := splitID(42)
	assert.Error(t, err)
}

func TestIDString(t *testing.T) {
	id := bson.NewObjectID()

	assert.Equal(t, id.Hex(), idString(id))
	assert.Equal(t, "legacy", idString("legacy"))
	assert.Equal(t, "7", idString(int32(7)))
}

func TestFilterOrAll(t *testing.T) {
	assert.Equal(t, bson.D{}, filterOrAll(nil))
	assert.Equal(t, bson.M{"a": 1}, filterOrAll(bson.M{"a": 1}))
}

func TestMongoStore_RequiresCollection(t *testing.T) {
	s := NewMongoStore(nil)

	assert.ErrorIs(t, s.Get(t.Context(), "", Query{}, &[]document{}), ErrCollectionRequired)

	_, err := s.Save(t.Context(), "", document{})
	assert.ErrorIs(t, err, ErrCollectionRequired)

	_, err = s.Remove(t.Context(), "", nil)
	assert.ErrorIs(t, err, ErrCollectionRequired)

	_, err = s.Update(t.Context(), "", nil, bson.M{})
	assert.ErrorIs(t, err, ErrCollectionRequired)

	_, err = s.UpdateMany(t.Context(), "", nil, bson.M{})
	assert.ErrorIs(t, err, ErrCollectionRequired)

	assert.ErrorIs(t, s.EnsureIndexes(t.Context(), "", nil), ErrCollectionRequired)
}
