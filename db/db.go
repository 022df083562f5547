package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"

	"streammax/models"
)

var DB *buntdb.DB

// InitDB opens the view-state database. ":memory:" keeps everything in
// process memory, which is what the landing page wants: state lives as long
// as the visitor's session and no longer.
func InitDB(path string) error {
	if path == "" {
		path = ":memory:"
	}

	var err error
	DB, err = buntdb.Open(path)
	if err != nil {
		return fmt.Errorf("opening state db %s: %w", path, err)
	}
	return nil
}

func GetDB() *buntdb.DB {
	return DB
}

func Close() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}

const StateTable = "state"

// StateStore keeps one ViewState per visitor session. Entries expire after
// ttl without activity.
type StateStore struct {
	db  *buntdb.DB
	ttl time.Duration
}

func NewStateStore(db *buntdb.DB, ttl time.Duration) *StateStore {
	return &StateStore{db: db, ttl: ttl}
}

func stateKey(sid string) string {
	return StateTable + ":" + sid
}

// Load returns the visitor's state, or the initial state when none is stored.
func (s *StateStore) Load(sid string) (models.ViewState, error) {
	var st models.ViewState
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		st, err = s.get(tx, sid)
		return err
	})
	return st, err
}

// Update applies fn to the visitor's state inside a single write transaction,
// so concurrent requests from one visitor are applied one after another. When
// fn fails nothing is written.
func (s *StateStore) Update(sid string, fn func(st *models.ViewState) error) (models.ViewState, error) {
	var st models.ViewState
	err := s.db.Update(func(tx *buntdb.Tx) error {
		var err error
		st, err = s.get(tx, sid)
		if err != nil {
			return err
		}
		if err := fn(&st); err != nil {
			return err
		}
		return s.set(tx, sid, st)
	})
	return st, err
}

// Reset drops the visitor's state, as a fresh page load does.
func (s *StateStore) Reset(sid string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(stateKey(sid))
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		return err
	})
}

func (s *StateStore) get(tx *buntdb.Tx, sid string) (models.ViewState, error) {
	var st models.ViewState
	val, err := tx.Get(stateKey(sid))
	if errors.Is(err, buntdb.ErrNotFound) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return st, fmt.Errorf("decoding state for %s: %w", sid, err)
	}
	return st, nil
}

func (s *StateStore) set(tx *buntdb.Tx, sid string, st models.ViewState) error {
	jf, err := json.Marshal(st)
	if err != nil {
		return err
	}

	var opts *buntdb.SetOptions
	if s.ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: s.ttl}
	}
	_, _, err = tx.Set(stateKey(sid), string(jf), opts)
	return err
}
