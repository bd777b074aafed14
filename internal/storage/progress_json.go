package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"aestheticpomodoro/internal/core/model"
)

// ProgressKey is the storage key of the single progression record.
const ProgressKey = "user_progress_v1"

// ProgressStore persists model.UserProgress as one JSON entry.
type ProgressStore struct {
	kv KeyValue
}

// NewProgressStore wraps a key/value store.
func NewProgressStore(kv KeyValue) *ProgressStore {
	return &ProgressStore{kv: kv}
}

// Load returns the stored record merged over the defaults and normalized.
// A missing entry yields the defaults; an unreadable one yields the defaults
// together with the error.
func (store *ProgressStore) Load() (model.UserProgress, error) {
	progress := model.DefaultProgress()

	data, err := store.kv.Get(ProgressKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return progress, nil
		}
		return progress, fmt.Errorf("load progress: %w", err)
	}

	if err := json.Unmarshal(data, &progress); err != nil {
		return model.DefaultProgress(), fmt.Errorf("parse progress: %w", err)
	}
	progress.Normalize()
	return progress, nil
}

// Save overwrites the stored record. Empty sets are written as [].
func (store *ProgressStore) Save(progress model.UserProgress) error {
	data, err := json.Marshal(progress.Clone())
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := store.kv.Set(ProgressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
