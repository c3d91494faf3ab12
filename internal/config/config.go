package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Missing drawing policies
const (
	OnMissingFail          = "fail"
	OnMissingDatasheetOnly = "datasheet-only"
)

// EnvPrefix prefixes environment overrides (e.g., DATASHEET_MASTER_SOURCE)
const EnvPrefix = "DATASHEET"

// Config represents the application configuration
type Config struct {
	Master    MasterConfig   `mapstructure:"master"`
	Templates TemplateConfig `mapstructure:"templates"`
	Drawings  DrawingConfig  `mapstructure:"drawings"`
	Output    OutputConfig   `mapstructure:"output"`
	Server    ServerConfig   `mapstructure:"server"`
	S3        S3Config       `mapstructure:"s3"`
}

// MasterConfig holds the master file settings
type MasterConfig struct {
	Source     string            `mapstructure:"source"`      // Path, http(s) URL or s3://bucket/key
	GearSheets map[string]string `mapstructure:"gear_sheets"` // Family -> gearmotor sheet name
}

// TemplateConfig holds the two template layouts
type TemplateConfig struct {
	Motor     string `mapstructure:"motor"`     // Motor-only template location
	Gearmotor string `mapstructure:"gearmotor"` // Gearmotor template location
}

// DrawingConfig holds the drawing directories
type DrawingConfig struct {
	Dirs      map[string]string `mapstructure:"dirs"`       // KSY, KSY_B5, KSY_Stecker, KSG
	OnMissing string            `mapstructure:"on_missing"` // "fail" or "datasheet-only"
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir        string   `mapstructure:"dir"`         // Output directory
	WriteFiles bool     `mapstructure:"write_files"` // Write deliverables to Dir
	Formats    []string `mapstructure:"formats"`     // Extra exports (docx, html, json)
}

// ServerConfig holds web form settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// S3Config holds credentials for s3:// locations
type S3Config struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// A .env file next to the binary is loaded into the environment first
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Environment loaded from .env")
	}

	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Printf("  Master: %s\n", v.GetString("master.source"))
			fmt.Printf("  Output: %s\n", v.GetString("output.dir"))
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures the layout of the original working directory
func setDefaults(v *viper.Viper) {
	v.SetDefault("master.source", "./SEW_Masterfile.xlsx")
	v.SetDefault("master.gear_sheets", map[string]string{
		"KSG": "KSY HD - KSG",
	})

	v.SetDefault("templates.motor", "./Datenblattvorlage_Motor.xlsx")
	v.SetDefault("templates.gearmotor", "./Datenblattvorlage_Getriebemotor.xlsx")

	v.SetDefault("drawings.dirs", map[string]string{
		"KSY":         "./STEP Dateien/KSY-Maßblätter",
		"KSY_B5":      "./STEP Dateien/KSY-Maßblätter B5",
		"KSY_Stecker": "./STEP Dateien/KSY B14 mit Stecker",
		"KSG":         "./STEP Dateien/KSG-Maßblätter",
	})
	v.SetDefault("drawings.on_missing", OnMissingFail)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.write_files", true)
	v.SetDefault("output.formats", []string{})

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.use_path_style", false)
}

// isLocal reports whether a location is a filesystem path
func isLocal(location string) bool {
	lower := strings.ToLower(location)
	return !strings.HasPrefix(lower, "http://") &&
		!strings.HasPrefix(lower, "https://") &&
		!strings.HasPrefix(lower, "s3://")
}

func absLocation(location string) (string, error) {
	if location == "" || !isLocal(location) || strings.HasPrefix(location, "file://") {
		return location, nil
	}
	return filepath.Abs(location)
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	var err error
	if c.Master.Source, err = absLocation(c.Master.Source); err != nil {
		return fmt.Errorf("failed to resolve master.source: %w", err)
	}
	if c.Templates.Motor, err = absLocation(c.Templates.Motor); err != nil {
		return fmt.Errorf("failed to resolve templates.motor: %w", err)
	}
	if c.Templates.Gearmotor, err = absLocation(c.Templates.Gearmotor); err != nil {
		return fmt.Errorf("failed to resolve templates.gearmotor: %w", err)
	}

	for key, dir := range c.Drawings.Dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve drawings.dirs.%s: %w", key, err)
		}
		c.Drawings.Dirs[key] = abs
	}

	return c.SetOutputDir(c.Output.Dir)
}

// SetOutputDir sets the output directory as an absolute path
func (c *Config) SetOutputDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = abs
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if !c.Output.WriteFiles {
		return nil
	}
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// lookup finds a map entry ignoring case; viper lowercases map keys
func lookup(m map[string]string, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// DrawingDir returns the drawing directory for a directory key
func (c *Config) DrawingDir(key string) (string, bool) {
	return lookup(c.Drawings.Dirs, key)
}

// GearSheet returns the gearmotor sheet name for a family
func (c *Config) GearSheet(family string) (string, bool) {
	return lookup(c.Master.GearSheets, family)
}

// TemplateFor returns the template location for the gearbox choice
func (c *Config) TemplateFor(gearbox bool) string {
	if gearbox {
		return c.Templates.Gearmotor
	}
	return c.Templates.Motor
}

// OutputPath returns the full path of an output file
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Master.Source == "" {
		return fmt.Errorf("master.source cannot be empty")
	}
	if c.Templates.Motor == "" || c.Templates.Gearmotor == "" {
		return fmt.Errorf("templates.motor and templates.gearmotor must both be set")
	}

	for _, loc := range []string{c.Master.Source, c.Templates.Motor, c.Templates.Gearmotor} {
		if !isLocal(loc) {
			continue
		}
		path := strings.TrimPrefix(loc, "file://")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
	}

	switch c.Drawings.OnMissing {
	case OnMissingFail, OnMissingDatasheetOnly:
	default:
		return fmt.Errorf("drawings.on_missing must be %q or %q, got %q", OnMissingFail, OnMissingDatasheetOnly, c.Drawings.OnMissing)
	}

	for _, f := range c.Output.Formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "docx", "word", "html", "json":
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Datasheet Configuration ===")
	fmt.Printf("Master Source:     %s\n", c.Master.Source)
	fmt.Printf("Gear Sheets:       %v\n", c.Master.GearSheets)
	fmt.Printf("Motor Template:    %s\n", c.Templates.Motor)
	fmt.Printf("Gear Template:     %s\n", c.Templates.Gearmotor)
	fmt.Printf("Drawing Dirs:      %v\n", c.Drawings.Dirs)
	fmt.Printf("Missing Drawing:   %s\n", c.Drawings.OnMissing)
	fmt.Printf("Output Directory:  %s\n", c.Output.Dir)
	fmt.Printf("Write Files:       %v\n", c.Output.WriteFiles)
	fmt.Printf("Extra Formats:     %v\n", c.Output.Formats)
	fmt.Printf("Server Address:    %s\n", c.Server.Addr)
	fmt.Println("===============================")
}
