package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceAccount поля ключа сервисного аккаунта, без которых подключение невозможно
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ParseServiceAccount проверяет JSON-ключ сервисного аккаунта
func ParseServiceAccount(credentialsJSON []byte) (*ServiceAccount, error) {
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("%w: credentials are empty", ErrInvalidCredentials)
	}

	var sa ServiceAccount
	if err := json.Unmarshal(credentialsJSON, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	switch {
	case sa.Type != "service_account":
		return nil, fmt.Errorf("%w: type must be service_account", ErrInvalidCredentials)
	case sa.ProjectID == "":
		return nil, fmt.Errorf("%w: project_id is missing", ErrInvalidCredentials)
	case sa.ClientEmail == "":
		return nil, fmt.Errorf("%w: client_email is missing", ErrInvalidCredentials)
	case sa.PrivateKey == "":
		return nil, fmt.Errorf("%w: private_key is missing", ErrInvalidCredentials)
	}

	return &sa, nil
}

// FirestoreClient единственное подключение процесса к Firestore.
// Создаётся в main и передаётся в репозитории явно.
type FirestoreClient struct {
	mu     sync.Mutex
	app    *firebase.App
	db     *firestore.Client
	logger *zap.Logger
}

// NewFirestoreClient создаёт неподключённый клиент
func NewFirestoreClient(logger *zap.Logger) *FirestoreClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirestoreClient{logger: logger}
}

// Connect подключается к Firestore по ключу сервисного аккаунта.
// Повторный вызов переиспользует уже открытое подключение.
func (c *FirestoreClient) Connect(ctx context.Context, credentialsJSON []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		c.logger.Debug("firestore already initialized, reusing connection")
		return nil
	}

	sa, err := ParseServiceAccount(credentialsJSON)
	if err != nil {
		return err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: sa.ProjectID}, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	db, err := app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("failed to get Firestore client: %w", err)
	}

	c.app = app
	c.db = db
	c.logger.Info("firebase initialized", zap.String("project_id", sa.ProjectID))

	return nil
}

// IsInitialized сообщает, открыто ли подключение
func (c *FirestoreClient) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db != nil
}

func (c *FirestoreClient) doc(ref Ref) (*firestore.DocumentRef, error) {
	c.mu.Lock()
	db := c.db
	c.mu.Unlock()

	if db == nil {
		return nil, ErrNotInitialized
	}
	d := db.Doc(ref.Path())
	if d == nil {
		return nil, fmt.Errorf("invalid document path %q", ref.Path())
	}
	return d, nil
}

func (c *FirestoreClient) Get(ctx context.Context, ref Ref, dst any) (bool, error) {
	d, err := c.doc(ref)
	if err != nil {
		return false, err
	}

	snap, err := d.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !snap.Exists() {
		return false, nil
	}

	return true, snap.DataTo(dst)
}

func (c *FirestoreClient) Set(ctx context.Context, ref Ref, data any) error {
	d, err := c.doc(ref)
	if err != nil {
		return err
	}
	_, err = d.Set(ctx, data)
	return err
}

func (c *FirestoreClient) Update(ctx context.Context, ref Ref, fields map[string]any) error {
	d, err := c.doc(ref)
	if err != nil {
		return err
	}

	_, err = d.Update(ctx, toFirestoreUpdates(fields))
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func toFirestoreUpdates(fields map[string]any) []firestore.Update {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if inc, ok := v.(Increment); ok {
			v = firestore.Increment(inc.Delta)
		}
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	return updates
}

// Close закрывает подключение
func (c *FirestoreClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.app = nil
	return err
}

var _ Store = (*FirestoreClient)(nil)
