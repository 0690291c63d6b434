package inventory

import (
	"context"
	"fmt"
	"strings"

	"market-sync/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// feedColumns are the columns the upstream export must provide.
var feedColumns = []string{"id", "code", "quantity", "price"}

// DatabaseSource reads the feed table maintained by the upstream export.
// The exporter rewrites the table on its own schedule, so every load
// re-verifies the expected columns before scanning.
type DatabaseSource struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

// NewDatabaseSource builds a Source reading from the given feed table.
func NewDatabaseSource(db *gorm.DB, table string, logger *zap.Logger) *DatabaseSource {
	return &DatabaseSource{db: db, table: table, logger: logger}
}

// feedRow maps the feed table. Scalars are scanned as text because the
// export writes raw feed values, quantity sentinels included.
type feedRow struct {
	ID       int64
	Code     string
	Quantity string
	Price    string
}

func (s *DatabaseSource) Load(ctx context.Context) ([]Record, error) {
	missing, err := database.MissingColumns(s.db, s.table, feedColumns...)
	if err != nil {
		return nil, fmt.Errorf("inspect feed table %s: %w", s.table, err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("feed table %s is missing columns: %s", s.table, strings.Join(missing, ", "))
	}

	var rows []feedRow
	if err := s.db.WithContext(ctx).Table(s.table).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load feed table %s: %w", s.table, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			Code:     row.Code,
			Quantity: row.Quantity,
			Price:    row.Price,
		})
	}

	s.logger.Debug("inventory snapshot loaded",
		zap.String("source", SourceDatabase),
		zap.String("table", s.table),
		zap.Int("records", len(records)))
	return records, nil
}
