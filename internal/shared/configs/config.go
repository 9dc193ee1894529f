package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Exporter ExporterConfig `mapstructure:"exporter" validate:"required"`
	Artifact ArtifactConfig `mapstructure:"artifact" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ExporterConfig holds log scanning and aggregation configuration.
type ExporterConfig struct {
	LogDir        string `mapstructure:"log_dir" validate:"required"`
	LiveLogName   string `mapstructure:"live_log_name" validate:"required"`
	ArchivePrefix string `mapstructure:"archive_prefix" validate:"required"`
	DefaultWindow string `mapstructure:"default_window" validate:"required"`
	FlagFile      string `mapstructure:"flag_file"`
	ScanTimeout   int    `mapstructure:"scan_timeout" validate:"required,min=1"` // seconds
}

// ArtifactConfig holds configuration for the persisted exposition document.
type ArtifactConfig struct {
	RootDir         string `mapstructure:"root_dir" validate:"required"`
	FileName        string `mapstructure:"file_name" validate:"required"`
	RefreshInterval int    `mapstructure:"refresh_interval" validate:"min=0"` // seconds, 0 disables the scheduler
}
