package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time parses the simulated latency duration
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
    Env          string        // application environment (e.g. "dev", "prod")
    Port         string        // HTTP port to listen on
    JWTSecret    string        // secret used to sign JWTs
    AccessTTLMin int           // access token time-to-live in minutes
    BcryptCost   int           // bcrypt cost for password hashing
    SessionKey   string        // redis key of the durable session slot
    SimLatency   time.Duration // artificial delay applied to ledger mutations
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  SESSION_KEY and
// SIM_LATENCY are optional and default to a sensible slot name and zero
// delay respectively.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),               // environment (dev/test/prod)
        Port:         must("APP_PORT"),              // port to bind the HTTP server
        JWTSecret:    must("JWT_SECRET"),            // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
        BcryptCost:   mustInt("BCRYPT_COST"),        // bcrypt cost factor
        SessionKey:   envStr("SESSION_KEY", "session:user"),
        SimLatency:   envDur("SIM_LATENCY", 0),
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
