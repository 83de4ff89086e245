// Package store persists sessions and timer state through a small key-value
// capability with interchangeable backends
package store

import (
	"errors"
	"fmt"

	"github.com/ayoisaiah/dayclock/internal/apperr"
)

// Storage keys.
const (
	SessionsKey   = "sessions"
	StartTimeKey  = "timerStartTime"
	IsTrackingKey = "timerIsTracking"
)

// Backend names accepted by Open.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrKeyNotFound is returned by KV.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

var (
	errDBLocked = &apperr.Error{
		Message: "is dayclock already running? only one instance can hold the database",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}
)

// KV is a durable get/set/remove-by-key store. Values are opaque bytes and
// every call is a complete, synchronous operation.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}

// Open returns the backend identified by driver, stored at path.
func Open(driver, path string) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch driver {
	case DriverBolt, "":
		kv, err = NewBoltKV(path)
	case DriverSQLite:
		kv, err = NewSQLiteKV(path)
	case DriverMemory:
		kv = NewMemoryKV()
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	return kv, nil
}

// getString returns the value stored under key, or "" when it is absent.
func getString(kv KV, key string) (string, error) {
	b, err := kv.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}

	return string(b), nil
}
