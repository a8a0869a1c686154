package shortcut

// Config represents shortcut module configuration
type Config struct {
	Program      string   `mapstructure:"program"`
	Interpreters []string `mapstructure:"interpreters"`
}

// DefaultConfig returns default shortcut configuration
func DefaultConfig() Config {
	return Config{
		Program:      "window_manager_gui.py",
		Interpreters: []string{"py", "python"},
	}
}
