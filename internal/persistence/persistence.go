package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openvoiceos/mk2fan/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketFans = "fans"
)

// FanState is the last speed that was successfully applied to a fan.
type FanState struct {
	Speed     int       `json:"speed"`
	Pwm       int       `json:"pwm"`
	Timestamp time.Time `json:"timestamp"`
}

type Persistence interface {
	Init() error

	LoadFanSpeed(fanId string) (*FanState, error)
	SaveFanSpeed(fanId string, state FanState) (err error)
	DeleteFanSpeed(fanId string) (err error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SaveFanSpeed stores the last applied speed of the given fan
func (p persistence) SaveFanSpeed(fanId string, state FanState) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketFans))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		return b.Put([]byte(fanId), data)
	})
}

// LoadFanSpeed loads the last applied speed of the given fan.
// Returns os.ErrNotExist if nothing has been stored yet.
func (p persistence) LoadFanSpeed(fanId string) (*FanState, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var state *FanState
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(fanId))
		if v == nil {
			return os.ErrNotExist
		}

		var loaded FanState
		err := json.Unmarshal(v, &loaded)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved fan data for %s: %v", fanId, err)
			err := b.Delete([]byte(fanId))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", fanId, err)
			}
			return os.ErrNotExist
		}
		state = &loaded
		return nil
	})

	return state, err
}

func (p persistence) DeleteFanSpeed(fanId string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			// no fan bucket yet
			return nil
		}
		if b.Get([]byte(fanId)) == nil {
			return nil
		}
		return b.Delete([]byte(fanId))
	})
}
