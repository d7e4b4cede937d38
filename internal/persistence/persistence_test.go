package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestPersistence(t *testing.T) (Persistence, string) {
	dbPath := filepath.Join(t.TempDir(), "db", "mk2fan.db")
	p := NewPersistence(dbPath)
	require.NoError(t, p.Init())
	return p, dbPath
}

func TestPersistence_Init_CreatesParentDir(t *testing.T) {
	// GIVEN
	_, dbPath := newTestPersistence(t)

	// THEN
	info, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPersistence_LoadFanSpeed_NothingStored(t *testing.T) {
	// GIVEN
	p, _ := newTestPersistence(t)

	// WHEN
	state, err := p.LoadFanSpeed("fan")

	// THEN
	assert.Nil(t, state)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_SaveAndLoadFanSpeed(t *testing.T) {
	// GIVEN
	p, _ := newTestPersistence(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expected := FanState{Speed: 50, Pwm: 127, Timestamp: now}

	// WHEN
	err := p.SaveFanSpeed("fan", expected)
	require.NoError(t, err)
	state, err := p.LoadFanSpeed("fan")

	// THEN
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, expected.Speed, state.Speed)
	assert.Equal(t, expected.Pwm, state.Pwm)
	assert.True(t, expected.Timestamp.Equal(state.Timestamp))
}

func TestPersistence_SaveFanSpeed_Overwrites(t *testing.T) {
	// GIVEN
	p, _ := newTestPersistence(t)
	_ = p.SaveFanSpeed("fan", FanState{Speed: 25, Pwm: 63})

	// WHEN
	err := p.SaveFanSpeed("fan", FanState{Speed: 100, Pwm: 255})

	// THEN
	require.NoError(t, err)
	state, err := p.LoadFanSpeed("fan")
	require.NoError(t, err)
	assert.Equal(t, 100, state.Speed)
	assert.Equal(t, 255, state.Pwm)
}

func TestPersistence_DeleteFanSpeed(t *testing.T) {
	// GIVEN
	p, _ := newTestPersistence(t)
	_ = p.SaveFanSpeed("fan", FanState{Speed: 25, Pwm: 63})

	// WHEN
	err := p.DeleteFanSpeed("fan")

	// THEN
	assert.NoError(t, err)
	state, err := p.LoadFanSpeed("fan")
	assert.Nil(t, state)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_DeleteFanSpeed_Missing(t *testing.T) {
	// GIVEN
	p, _ := newTestPersistence(t)

	// WHEN
	err := p.DeleteFanSpeed("unknown")

	// THEN
	assert.NoError(t, err)
}

func TestPersistence_LoadFanSpeed_CorruptDataIsDropped(t *testing.T) {
	// GIVEN
	p, dbPath := newTestPersistence(t)
	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketFans))
		if err != nil {
			return err
		}
		return b.Put([]byte("fan"), []byte("{not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// WHEN
	state, err := p.LoadFanSpeed("fan")

	// THEN
	assert.Nil(t, state)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = p.SaveFanSpeed("fan", FanState{Speed: 0})
	assert.NoError(t, err)
}
