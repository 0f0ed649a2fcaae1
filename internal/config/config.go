package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		// Directory holding the orders and users data files.
		DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"."`
		// Orders data file name within DataDir.
		OrdersFile string `yaml:"orders_file" env:"ORDERS_FILE" env-default:"orders.json"`
		// Users data file name within DataDir.
		UsersFile string `yaml:"users_file" env:"USERS_FILE" env-default:"users.json"`
		// Subconfig.
		Logger Logger `yaml:"logger"`
		// Cost of the password to hash. Must be greater than 3.
		PasswordHashCost int `yaml:"password_hash_cost" env-default:"14"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files.
		Path string `yaml:"path" env:"LOG_PATH" env-default:"servicedesk.log"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb" env-default:"10"`
		MaxBackups int `yaml:"max_backups" env-default:"3"`
		MaxAgeDays int `yaml:"max_age_days" env-default:"30"`
	}
)

// MustLoad returns an application configuration which is populated
// from the given configuration file and environment variables.
// The configuration file is optional; defaults apply without it.
func MustLoad() *Config {
	// Configuration yaml file path.
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	var cfg Config

	if *configPath != "" {
		// Check if file exists.
		if _, err := os.Stat(*configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", *configPath)
		}

		// Load from YAML cfg file.
		bytes, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("failed to open config file: %s", *configPath)
		}
		if err = cleanenv.ParseYAML(bytes, &cfg); err != nil {
			log.Fatalf("failed to parse config file: %s", *configPath)
		}
	}

	// Read environment variables.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read environment variables: %v", err)
	}

	return &cfg
}
