package classifier

// Config is a configuration for the classifier application
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`
	// AuditBackend selects where verdicts are recorded: "mem" or "pg".
	AuditBackend string `mapstructure:"audit_backend"`
	// DBDSN is the postgres DSN, required for the pg backend.
	DBDSN string `mapstructure:"db_dsn"`
	// PANHashKey is the HMAC pepper used to fingerprint numbers in the audit log.
	PANHashKey string `mapstructure:"pan_hash_key"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:     "localhost:9090",
		AuditBackend: "mem",
		PANHashKey:   "dev-secret-pepper",
		LogLevel:     "info",
	}
}
