package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulfront/haulfront-backend/pkg/redis"
)

type fakeKV struct {
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) SettingsKey(userID string) string {
	return "hf:settings:" + userID
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	store := NewStore(newFakeKV())

	doc, err := store.Load(context.Background(), "user-001")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), doc)
	assert.Equal(t, "Transportation Manager", doc.Profile.Title)
	assert.Equal(t, 30, doc.Preferences.RefreshInterval)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv)
	ctx := context.Background()

	doc := Defaults()
	doc.Profile.FirstName = "Jane"
	doc.Preferences.Theme = "dark"
	doc.Notifications.SMSNotifications = true

	require.NoError(t, store.Save(ctx, "user-001", doc))
	assert.Contains(t, kv.data, "hf:settings:user-001")

	loaded, err := store.Load(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSaveIsScopedPerUser(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	doc := Defaults()
	doc.Profile.FirstName = "Jane"
	require.NoError(t, store.Save(ctx, "user-001", doc))

	other, err := store.Load(ctx, "user-002")
	require.NoError(t, err)
	assert.Equal(t, "John", other.Profile.FirstName)
}

func TestLoadPropagatesStoreErrors(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("connection refused")
	store := NewStore(kv)

	_, err := store.Load(context.Background(), "user-001")
	require.Error(t, err)
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	kv := newFakeKV()
	kv.data["hf:settings:user-001"] = "{not json"
	store := NewStore(kv)

	_, err := store.Load(context.Background(), "user-001")
	require.Error(t, err)
}
