package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/signature"
)

// Config holds all application configuration values
type Config struct {
	Port string
	Env  string

	BrandFile string

	AllowedDomain           string
	FirebaseCredentialsPath string
	FirebaseAPIKey          string
	FirebaseAuthDomain      string
	FirebaseProjectID       string

	RedisURL         string
	LoginMaxAttempts int
	LoginWindow      time.Duration

	DatabaseURL string
}

// Load reads .env when present and then the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for empty values
func FromEnv(getenv func(string) string) *Config {
	return &Config{
		Port:                    getOr(getenv, "PORT", "8080"),
		Env:                     getenv("ENV"),
		BrandFile:               getenv("BRAND_FILE"),
		AllowedDomain:           getenv("ALLOWED_DOMAIN"),
		FirebaseCredentialsPath: getOr(getenv, "FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		FirebaseAPIKey:          getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain:      getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID"),
		RedisURL:                getenv("REDIS_URL"),
		LoginMaxAttempts:        getInt(getenv, "LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:             getDuration(getenv, "LOGIN_WINDOW", 15*time.Minute),
		DatabaseURL:             getenv("DATABASE_URL"),
	}
}

// IsProduction reports whether cookies should be marked Secure
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether the Google account gate should be active
func (c *Config) AuthEnabled() bool {
	return c.AllowedDomain != ""
}

func getOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(getenv func(string) string, key string, fallback int) int {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// BrandFile is the YAML document that customizes the signature
//
//	brand:
//	  name: Tricoci University
//	  tagline: CELEBRATING 20+ YEARS OF CHANGING LIVES
//	campuses:
//	  - label: Bridgeview, IL
//	    address: 7350 West 87th Street, Bridgeview, IL
type BrandFile struct {
	Brand    signature.Brand `yaml:"brand"`
	Campuses []campus.Campus `yaml:"campuses"`
}

// ParseBrandFile decodes data. Missing brand fields take their defaults and
// an empty campus list keeps the built-in directory.
func ParseBrandFile(data []byte) (signature.Brand, campus.Directory, error) {
	var doc BrandFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return signature.Brand{}, campus.Directory{}, fmt.Errorf("parse brand file: %w", err)
	}

	dir := campus.Default()
	if len(doc.Campuses) > 0 {
		dir = campus.NewDirectory(doc.Campuses)
	}
	return doc.Brand.WithDefaults(), dir, nil
}

// LoadBrand reads the brand file at path, or returns the built-in brand
// and directory when path is empty
func LoadBrand(path string) (signature.Brand, campus.Directory, error) {
	if path == "" {
		return signature.DefaultBrand(), campus.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return signature.Brand{}, campus.Directory{}, fmt.Errorf("read brand file: %w", err)
	}
	return ParseBrandFile(data)
}
