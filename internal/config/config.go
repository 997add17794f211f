package config // package config loads application configuration from environment variables

import (
	"log"

	"github.com/caarlos0/env/v11" // struct-tag driven env parsing
	"github.com/joho/godotenv"    // optional .env file for local runs
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; defaults match a single-box development setup.
type Config struct {
	Env            string  `env:"APP_ENV" envDefault:"dev"`                       // application environment (e.g. "dev", "prod")
	Port           string  `env:"APP_PORT" envDefault:"8080"`                     // HTTP port to listen on
	JWTSecret      string  `env:"JWT_SECRET,required,notEmpty"`                   // secret used to sign JWTs
	AccessTTLMin   int     `env:"ACCESS_TOKEN_TTL_MIN" envDefault:"120"`          // access token time-to-live in minutes
	BcryptCost     int     `env:"BCRYPT_COST" envDefault:"10"`                    // bcrypt cost for password hashing
	StoreURL       string  `env:"STORE_URL" envDefault:"file://./data"`           // where AccountList/SongList/SongQueue live
	RestoreState   bool    `env:"RESTORE_STATE" envDefault:"true"`                // read last known state at startup
	SaveOnShutdown bool    `env:"SAVE_ON_SHUTDOWN" envDefault:"true"`             // write state when the server stops
	CatalogFile    string  `env:"CATALOG_FILE"`                                   // optional YAML catalog replacing the stock songs
	DefaultBalance int     `env:"DEFAULT_BALANCE_SECONDS" envDefault:"90000"`     // time credit for new accounts
	UserDailyCap   int     `env:"USER_DAILY_CAP" envDefault:"3"`                  // songs per user per day
	SongDailyCap   int     `env:"SONG_DAILY_CAP" envDefault:"3"`                  // plays per song per day
	PlaybackSpeed  float64 `env:"PLAYBACK_SPEED" envDefault:"1"`                  // simulated playback clock multiplier
	RabbitMQURL    string  `env:"RABBITMQ_URL"`                                   // broker for jukebox events; empty disables publishing
	EventLogDir    string  `env:"EVENT_LOG_DIR" envDefault:"logs"`                // where the event consumer appends jukebox.log
}

// Parse reads a .env file when present and decodes the environment into a
// Config.
func Parse() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is Parse for main: configuration errors halt the program.
func Load() Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}
