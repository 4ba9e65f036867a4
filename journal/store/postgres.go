package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rustyeddy/tradedash/journal"
)

type entryModel struct {
	ID         string  `gorm:"primaryKey;type:varchar(64)"`
	Position   int     `gorm:"index;not null"`
	Date       string  `gorm:"type:varchar(10);index;not null"`
	PnL        float64 `gorm:"column:pnl;type:decimal(20,8);not null"`
	Trades     int     `gorm:"not null"`
	Direction  string  `gorm:"type:varchar(8);not null"`
	Bias       string  `gorm:"type:varchar(8);not null"`
	Reason     string  `gorm:"type:text"`
	Image      string  `gorm:"type:text"`
	LongCount  *int
	ShortCount *int

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (entryModel) TableName() string {
	return "journal_entries"
}

func toModel(e journal.Entry, pos int) entryModel {
	return entryModel{
		ID:         e.ID,
		Position:   pos,
		Date:       e.Date,
		PnL:        e.PnL,
		Trades:     e.Trades,
		Direction:  string(e.Direction),
		Bias:       string(e.Bias),
		Reason:     e.Reason,
		Image:      e.Image,
		LongCount:  e.LongCount,
		ShortCount: e.ShortCount,
	}
}

func (m entryModel) entry() journal.Entry {
	return journal.Entry{
		ID:         m.ID,
		Date:       m.Date,
		PnL:        m.PnL,
		Trades:     m.Trades,
		Direction:  journal.Direction(m.Direction),
		Bias:       journal.Bias(m.Bias),
		Reason:     m.Reason,
		Image:      m.Image,
		LongCount:  m.LongCount,
		ShortCount: m.ShortCount,
	}
}

// Postgres stores entries in the journal_entries table through gorm.
type Postgres struct {
	db *gorm.DB
}

// OpenPostgres connects to dsn and migrates the entries table.
func OpenPostgres(dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: dsn is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	return NewPostgres(db)
}

// NewPostgres wraps an open gorm handle.
func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := db.AutoMigrate(&entryModel{}); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Load(ctx context.Context) ([]journal.Entry, error) {
	var rows []entryModel
	if err := p.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]journal.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out, nil
}

// Save replaces the stored collection in one transaction.
func (p *Postgres) Save(ctx context.Context, entries []journal.Entry) error {
	rows := make([]entryModel, len(entries))
	for i, e := range entries {
		rows[i] = toModel(e, i)
	}

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entryModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

// Get returns a single entry by ID.
func (p *Postgres) Get(ctx context.Context, id string) (journal.Entry, error) {
	var row entryModel
	err := p.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return journal.Entry{}, fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return journal.Entry{}, err
	}
	return row.entry(), nil
}

// ListBetween returns entries dated within [from, to], newest first.
func (p *Postgres) ListBetween(ctx context.Context, from, to string) ([]journal.Entry, error) {
	var rows []entryModel
	err := p.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]journal.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out, nil
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
