package inventory

// Source kinds selectable via configuration.
const (
	SourceDatabase = "database"
	SourceS3       = "s3"
)

// Config selects and parameterizes the inventory source.
type Config struct {
	// Source picks the implementation: "database" or "s3".
	Source string `mapstructure:"source" default:"database" validate:"oneof=database s3"`
	// Table is the feed table read by the database source.
	Table string `mapstructure:"table" default:"products"`
	// Object is the feed object read by the s3 source. Empty means the
	// newest object under Prefix.
	Object string `mapstructure:"object" default:""`
	// Prefix scopes newest-object discovery for the s3 source.
	Prefix string `mapstructure:"prefix" default:"feed/"`
}
