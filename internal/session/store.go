// Package session provides the server-side session store. Sessions are
// keyed by an opaque browser token and persisted in a local bbolt file,
// so a restart does not empty carts. The cart itself lives inside the
// session record and nowhere else.
package session

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/gommon/random"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sessionBucket = []byte("sessions")

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Data is one session record.
type Data struct {
	Token     string      `json:"token"`
	UserID    int64       `json:"user_id"`
	Email     string      `json:"email"`
	Firstname string      `json:"firstname"`
	Lastname  string      `json:"lastname"`
	Address   string      `json:"address"`
	IsAdmin   bool        `json:"is_admin"`
	Cart      domain.Cart `json:"cart"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (d *Data) Expired() bool {
	return time.Now().After(d.ExpiresAt)
}

// Store persists sessions in a bbolt database.
type Store struct {
	db  *bolt.DB
	ttl time.Duration
}

// NewStore opens (or creates) the session database at path.
func NewStore(path string, ttl time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open session db")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init session bucket")
	}
	return &Store{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create starts a new session for user and persists it.
func (s *Store) Create(user *domain.User) (*Data, error) {
	now := time.Now()
	data := &Data{
		Token:     random.String(32, random.Alphanumeric),
		UserID:    user.ID,
		Email:     user.Email,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Address:   user.Address,
		IsAdmin:   user.IsAdmin,
		Cart:      domain.Cart{},
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.Save(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Get loads the session for token. Expired sessions are removed and
// reported as ErrNotFound.
func (s *Store) Get(token string) (*Data, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get([]byte(token))
		if v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	if data.Expired() {
		_ = s.Destroy(token)
		return nil, ErrNotFound
	}
	return &data, nil
}

// Save writes the session record back to the store.
func (s *Store) Save(data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(data.Token), raw)
	})
	return errors.Wrap(err, "write session")
}

// Destroy removes the session for token. Unknown tokens are a no-op.
func (s *Store) Destroy(token string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(token))
	})
	return errors.Wrap(err, "delete session")
}

// Sweep deletes all expired sessions and returns how many were removed.
func (s *Store) Sweep() (int, error) {
	var expired [][]byte
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).ForEach(func(k, v []byte) error {
			var data Data
			if err := json.Unmarshal(v, &data); err != nil || data.Expired() {
				key := make([]byte, len(k))
				copy(key, k)
				expired = append(expired, key)
			}
			return nil
		})
	})
	if err != nil {
		return 0, errors.Wrap(err, "scan sessions")
	}
	if len(expired) == 0 {
		return 0, nil
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "sweep sessions")
	}
	return len(expired), nil
}
