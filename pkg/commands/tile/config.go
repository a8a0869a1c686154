package tile

// Config represents tile module configuration
type Config struct {
	Columns     int  `mapstructure:"columns"`
	Rows        int  `mapstructure:"rows"`
	Count       int  `mapstructure:"count"`
	UseWorkArea bool `mapstructure:"use_work_area"`
}

// DefaultConfig returns default tile configuration
func DefaultConfig() Config {
	return Config{
		Columns:     3,
		Rows:        2,
		Count:       6,
		UseWorkArea: true,
	}
}
