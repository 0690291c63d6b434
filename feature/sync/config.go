package sync

// Config holds tuning for the sync service.
type Config struct {
	// IntervalMinutes is the pause between scheduled runs in serve mode.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"30" validate:"min=1"`
	// StockBatchSize caps entries per stock push. The partner API accepts
	// at most 2000.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"2000" validate:"min=1"`
	// PriceBatchSize caps entries per price push. The partner API accepts
	// at most 500.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"500" validate:"min=1"`
	// OfferCacheTTLSeconds keeps offer listings cached between calls.
	// Zero disables the cache; every listing hits the API.
	OfferCacheTTLSeconds int `mapstructure:"offer_cache_ttl_seconds" default:"0"`
	// OfferCacheSize bounds the offer cache (campaigns are few).
	OfferCacheSize int `mapstructure:"offer_cache_size" default:"8"`
	// ArchiveReports persists run reports to object storage.
	ArchiveReports bool `mapstructure:"archive_reports" default:"false"`
	// ArchivePrefix prefixes archived report object keys.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"reports/"`
}
