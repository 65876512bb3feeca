package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultAppEnv           = "local"
	defaultMetricsNamespace = "fruitfuel"
	defaultQRBaseURL        = "https://api.qrserver.com/v1/create-qr-code/"
	defaultQRSize           = "200x200"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and then .env over the built-in defaults.
// Missing files are not an error. Process environment variables win over both.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":             defaultAppEnv,
		"LOG_LEVEL":           "",
		"STORE_SEED_FILE":     "",
		"STORE_ENFORCE_STOCK": "false",
		"METRICS_NAMESPACE":   defaultMetricsNamespace,
		"PAYMENT_QR_BASE_URL": defaultQRBaseURL,
		"PAYMENT_QR_SIZE":     defaultQRSize,
	}
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// LogLevel is one of debug, info, warn, error. Empty means "pick by APP_ENV".
func LogLevel() string {
	_ = Load()
	return strings.ToLower(get("LOG_LEVEL", ""))
}

// ── Store ────────────────────────────────────────────────────────────────────

// SeedFile is an optional YAML file that replaces the built-in catalogue.
func SeedFile() string {
	_ = Load()
	return get("STORE_SEED_FILE", "")
}

// EnforceStock makes the cart refuse out-of-stock products.
func EnforceStock() bool {
	_ = Load()
	return getBool("STORE_ENFORCE_STOCK", false)
}

func MetricsNamespace() string {
	_ = Load()
	return get("METRICS_NAMESPACE", defaultMetricsNamespace)
}

// ── Payment hand-off ─────────────────────────────────────────────────────────

func PaymentQRBaseURL() string { _ = Load(); return get("PAYMENT_QR_BASE_URL", defaultQRBaseURL) }
func PaymentQRSize() string    { _ = Load(); return get("PAYMENT_QR_SIZE", defaultQRSize) }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	for key := range loaded {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			loaded[key] = v
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]any
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		switch v := val.(type) {
		case string:
			out[k] = strings.TrimSpace(v)
		case bool, float64:
			out[k] = fmt.Sprint(v)
		}
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.ToUpper(strings.TrimSpace(key))
		if !ok || key == "" {
			continue
		}
		out[key] = strings.Trim(strings.TrimSpace(value), `"'`)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(get(key, ""))
	if err != nil {
		return fallback
	}
	return b
}
