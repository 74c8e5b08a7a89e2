package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseServiceAccount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty", "", false},
		{"not json", "{oops", false},
		{"wrong type", `{"type":"authorized_user","project_id":"p","client_email":"e","private_key":"k"}`, false},
		{"missing project", `{"type":"service_account","client_email":"e","private_key":"k"}`, false},
		{"missing key", `{"type":"service_account","project_id":"p","client_email":"e"}`, false},
		{"valid", `{"type":"service_account","project_id":"lid","client_email":"bot@lid.iam","private_key":"k"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa, err := ParseServiceAccount([]byte(tt.input))
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "lid", sa.ProjectID)
		})
	}
}

func TestFirestoreClient_InvalidCredentialsLeaveClientUninitialized(t *testing.T) {
	c := NewFirestoreClient(nil)

	err := c.Connect(context.Background(), []byte(`{"type":"service_account"}`))
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, c.IsInitialized())
}

func TestFirestoreClient_OperationsBeforeConnect(t *testing.T) {
	c := NewFirestoreClient(nil)
	ctx := context.Background()

	var dst record
	_, err := c.Get(ctx, Doc("users", "1"), &dst)
	require.ErrorIs(t, err, ErrNotInitialized)
	require.ErrorIs(t, c.Set(ctx, Doc("users", "1"), dst), ErrNotInitialized)
	require.ErrorIs(t, c.Update(ctx, Doc("users", "1"), map[string]any{"a": 1}), ErrNotInitialized)
	require.NoError(t, c.Close())
}

func TestToFirestoreUpdates(t *testing.T) {
	updates := toFirestoreUpdates(map[string]any{
		"updated_at":               "now",
		"total_questions_answered": Inc(1),
	})

	require.Len(t, updates, 2)
	require.Equal(t, "total_questions_answered", updates[0].Path)
	require.Equal(t, firestore.Increment(int64(1)), updates[0].Value)
	require.Equal(t, "updated_at", updates[1].Path)
	require.Equal(t, "now", updates[1].Value)
}

// newEmulatorClient подключается к эмулятору Firestore; без FIRESTORE_EMULATOR_HOST тест пропускается
func newEmulatorClient(t *testing.T) *FirestoreClient {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	db, err := firestore.NewClient(context.Background(), "lid-bot-test")
	require.NoError(t, err)

	c := &FirestoreClient{db: db, logger: zap.NewNop()}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFirestoreClient_Emulator(t *testing.T) {
	c := newEmulatorClient(t)
	ctx := context.Background()
	ref := Doc("users", uuid.NewString())

	var got record
	found, err := c.Get(ctx, ref, &got)
	require.NoError(t, err)
	require.False(t, found)

	err = c.Update(ctx, ref, map[string]any{"count": Inc(1)})
	require.ErrorIs(t, err, ErrNotFound)

	created := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, c.Set(ctx, ref, map[string]any{"name": "Anna", "count": int64(1), "created": created}))
	require.NoError(t, c.Update(ctx, ref, map[string]any{"count": Inc(2), "name": "Anne"}))

	var doc struct {
		Name    string    `firestore:"name"`
		Count   int64     `firestore:"count"`
		Created time.Time `firestore:"created"`
	}
	found, err = c.Get(ctx, ref, &doc)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Anne", doc.Name)
	require.Equal(t, int64(3), doc.Count)
	require.True(t, created.Equal(doc.Created))

	child := ref.Child("translations", "de")
	found, err = c.Get(ctx, child, &got)
	require.NoError(t, err)
	require.False(t, found)
}
