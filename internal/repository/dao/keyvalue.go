package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValue is a single durable client-side value, e.g. the session token.
type KeyValue struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

type KeyValueDAO struct {
	db *gorm.DB
}

func NewKeyValueDAO(db *gorm.DB) *KeyValueDAO {
	return &KeyValueDAO{
		db: db,
	}
}

func (d *KeyValueDAO) Get(ctx context.Context, key string) (string, error) {
	var kv KeyValue

	result := d.db.WithContext(ctx).First(&kv, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}

		return "", result.Error
	}

	return kv.Value, nil
}

func (d *KeyValueDAO) Put(ctx context.Context, key, value string) error {
	kv := KeyValue{
		Key:   key,
		Value: value,
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&kv)

	return result.Error
}

func (d *KeyValueDAO) Delete(ctx context.Context, key string) error {
	result := d.db.WithContext(ctx).Delete(&KeyValue{}, "key = ?", key)

	return result.Error
}
