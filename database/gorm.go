package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored entry of a user collection.
type Record struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"size:128;not null;uniqueIndex:idx_records_owner_key,priority:1"`
	Collection string `gorm:"size:64;not null;uniqueIndex:idx_records_owner_key,priority:2"`
	RecordKey  string `gorm:"size:128;not null;uniqueIndex:idx_records_owner_key,priority:3"`
	Value      string `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Counter holds the last id handed out for a user collection.
type Counter struct {
	UserID     string `gorm:"primaryKey;size:128"`
	Collection string `gorm:"primaryKey;size:64"`
	Seq        int64  `gorm:"not null"`
}

// Migrate creates or updates the tables used by Gorm.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{}, &Counter{})
}

// Gorm is a Store on a relational database, postgres in production.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Set(ctx context.Context, userID, collection, key string, value []byte) error {
	if err := checkKey(userID, collection, key); err != nil {
		return err
	}
	rec := Record{
		UserID:     userID,
		Collection: collection,
		RecordKey:  key,
		Value:      string(value),
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "collection"}, {Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, key, err)
	}
	return nil
}

func (g *Gorm) Get(ctx context.Context, userID, collection string) (map[string][]byte, error) {
	if err := checkScope(userID, collection); err != nil {
		return nil, err
	}
	var recs []Record
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND collection = ?", userID, collection).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	out := make(map[string][]byte, len(recs))
	for _, r := range recs {
		out[r.RecordKey] = []byte(r.Value)
	}
	return out, nil
}

func (g *Gorm) Delete(ctx context.Context, userID, collection, key string) (bool, error) {
	if err := checkKey(userID, collection, key); err != nil {
		return false, err
	}
	res := g.db.WithContext(ctx).
		Where("user_id = ? AND collection = ? AND record_key = ?", userID, collection, key).
		Delete(&Record{})
	if res.Error != nil {
		return false, fmt.Errorf("delete %s/%s: %w", collection, key, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// NextID bumps the counter row in place and reads it back inside one
// transaction, so concurrent writers never share an id.
func (g *Gorm) NextID(ctx context.Context, userID, collection string) (int64, error) {
	if err := checkScope(userID, collection); err != nil {
		return 0, err
	}
	var next int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&Counter{}).Where("user_id = ? AND collection = ?", userID, collection)
		res := owned.UpdateColumn("seq", gorm.Expr("seq + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&Counter{UserID: userID, Collection: collection, Seq: 1})
			if ins.Error != nil {
				return ins.Error
			}
			if ins.RowsAffected == 0 {
				// lost the insert race, the row exists now
				err := tx.Model(&Counter{}).
					Where("user_id = ? AND collection = ?", userID, collection).
					UpdateColumn("seq", gorm.Expr("seq + ?", 1)).Error
				if err != nil {
					return err
				}
			}
		}
		var c Counter
		if err := tx.Where("user_id = ? AND collection = ?", userID, collection).Take(&c).Error; err != nil {
			return err
		}
		next = c.Seq
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("next id %s: %w", collection, err)
	}
	return next, nil
}
