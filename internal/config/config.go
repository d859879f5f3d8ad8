package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// CategoryRule maps a product-name substring to a reporting category. Rules
// apply in declaration order, first match wins.
type CategoryRule struct {
	Contains string
	Category string
}

type Config struct {
	OutputDir string

	ReturnMode      string
	CategoryRules   []CategoryRule
	DefaultCategory string

	// Marketplace xlsx exports put the data on the second sheet with the
	// header on the second row; csv exports are plain.
	XLSXDataSheet int
	XLSXHeaderRow int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		ReturnMode:      getEnv("RETURN_MODE", "subtract"),
		CategoryRules:   parseCategoryRules(getEnv("CATEGORY_RULES", "")),
		DefaultCategory: getEnv("DEFAULT_CATEGORY", "Other"),

		XLSXDataSheet: getEnvInt("XLSX_DATA_SHEET", 1),
		XLSXHeaderRow: getEnvInt("XLSX_HEADER_ROW", 2),
	}

	return cfg, nil
}

// DefaultCategoryRules covers the stock marketplace catalog split.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Contains: "saree", Category: "Saree"},
		{Contains: "money", Category: "Money Bank"},
	}
}

func parseCategoryRules(raw string) []CategoryRule {
	if strings.TrimSpace(raw) == "" {
		return DefaultCategoryRules()
	}
	rules := []CategoryRule{}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		contains := strings.ToLower(strings.TrimSpace(parts[0]))
		category := strings.TrimSpace(parts[1])
		if contains == "" || category == "" {
			continue
		}
		rules = append(rules, CategoryRule{Contains: contains, Category: category})
	}
	if len(rules) == 0 {
		return DefaultCategoryRules()
	}
	return rules
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
