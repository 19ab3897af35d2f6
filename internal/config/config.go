package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Required variables are enforced by must(); the
// rest fall back to sensible defaults so a bare deployment still boots.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    TokenCapacity int    // maximum number of concurrently active bearer tokens
}

// Load reads configuration values from environment variables and returns a
// Config.  Missing required values cause the program to exit with a fatal
// log message.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),      // environment (dev/test/prod)
        Port:          must("APP_PORT"),     // port to bind the HTTP server
        DBUser:        must("DB_USER"),      // database user
        DBPass:        os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:        must("DB_HOST"),      // database host
        DBPort:        must("DB_PORT"),      // database port
        DBName:        must("DB_NAME"),      // database name
        TokenCapacity: atoi(getenv("TOKEN_CAPACITY", "100")),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv returns the value of an optional environment variable or the
// provided default when it is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}
