package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ApprovalWeights is a 3-way Confirmed/Pending/Rejected outcome distribution.
type ApprovalWeights struct {
	Confirmed float64 `validate:"gte=0,lte=1"`
	Pending   float64 `validate:"gte=0,lte=1"`
	Rejected  float64 `validate:"gte=0,lte=1"`
}

func (w ApprovalWeights) sum() float64 {
	return w.Confirmed + w.Pending + w.Rejected
}

// RunConfig carries every input of a generation run: the PRNG seed, the fixed
// reference date and all probability constants. It is loaded once and treated
// as immutable afterwards; identical configs must produce identical ledgers.
type RunConfig struct {
	Seed  int64     `validate:"required"`
	Today time.Time `validate:"required"`

	Campus string `validate:"required"`

	// Historical window the first acquisition of each replacement chain is
	// drawn from.
	AcquisitionYearFrom int `validate:"gte=1990"`
	AcquisitionYearTo   int `validate:"gtefield=AcquisitionYearFrom"`

	// Pending approvals older than this cutoff are implausible in seed data
	// and are forced to Confirmed.
	RecentPendingCutoff time.Time `validate:"required"`

	InflationBaseYear     int     `validate:"gte=1990"`
	InflationYearlyRate   float64 `validate:"gte=0,lte=1"`
	BulkDiscountRate      float64 `validate:"gte=0,lte=1"`
	PriceJitterLow        float64 `validate:"gt=0"`
	PriceJitterHigh       float64 `validate:"gtefield=PriceJitterLow"`
	BulkQuantityThreshold int     `validate:"gte=2"`

	ProbBulkPurchase    float64 `validate:"gte=0,lte=1"`
	ProbEarlyReturn     float64 `validate:"gte=0,lte=1"`
	ProbReturnOver3y    float64 `validate:"gte=0,lte=1"`
	ProbReturnOver5y    float64 `validate:"gte=0,lte=1"`
	ProbDirectTransfer  float64 `validate:"gte=0,lte=1"`
	ProbReuseFromReturn float64 `validate:"gte=0,lte=1"`
	ProbSurplusStore    float64 `validate:"gte=0,lte=1"`
	ProbTagPrinted      float64 `validate:"gte=0,lte=1"`

	ApprovalAcquisition ApprovalWeights
	ApprovalReturn      ApprovalWeights
	ApprovalDisuse      ApprovalWeights
	ApprovalDisposal    ApprovalWeights

	MaxReuseCycles     int `validate:"gte=1"`
	RecentUseLimitDays int `validate:"gte=1"`

	OutputDir string
	ExcelPath string
}

// Default returns the authoritative constant set of the seed generator.
func Default() *RunConfig {
	return &RunConfig{
		Seed:  42,
		Today: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),

		Campus: "ERICA",

		AcquisitionYearFrom: 2015,
		AcquisitionYearTo:   2019,
		RecentPendingCutoff: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),

		InflationBaseYear:     2015,
		InflationYearlyRate:   0.015,
		BulkDiscountRate:      0.05,
		PriceJitterLow:        0.95,
		PriceJitterHigh:       1.05,
		BulkQuantityThreshold: 10,

		ProbBulkPurchase:    0.3,
		ProbEarlyReturn:     0.01,
		ProbReturnOver3y:    0.05,
		ProbReturnOver5y:    0.15,
		ProbDirectTransfer:  0.02,
		ProbReuseFromReturn: 0.05,
		ProbSurplusStore:    0.9,
		ProbTagPrinted:      0.8,

		ApprovalAcquisition: ApprovalWeights{Confirmed: 0.97, Pending: 0.02, Rejected: 0.01},
		ApprovalReturn:      ApprovalWeights{Confirmed: 0.85, Pending: 0.10, Rejected: 0.05},
		ApprovalDisuse:      ApprovalWeights{Confirmed: 0.70, Pending: 0.25, Rejected: 0.05},
		ApprovalDisposal:    ApprovalWeights{Confirmed: 0.93, Pending: 0.06, Rejected: 0.01},

		MaxReuseCycles:     3,
		RecentUseLimitDays: 365 * 2,

		OutputDir: "data_lifecycle",
		ExcelPath: "",
	}
}

// Load builds a RunConfig from defaults overridden by environment variables
// (a .env file is honoured, matching the other backend tools).
//
// Recognised variables: SEED, REFERENCE_DATE, CAMPUS, ACQ_YEAR_FROM,
// ACQ_YEAR_TO, OUTPUT_DIR, EXCEL_PATH.
func Load() (*RunConfig, error) {
	godotenv.Load()

	cfg := Default()

	if v := strings.TrimSpace(os.Getenv("SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(os.Getenv("REFERENCE_DATE")); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_DATE %q: %w", v, err)
		}
		cfg.Today = t
	}
	if v := strings.TrimSpace(os.Getenv("CAMPUS")); v != "" {
		cfg.Campus = v
	}
	cfg.AcquisitionYearFrom = intFromEnv("ACQ_YEAR_FROM", cfg.AcquisitionYearFrom)
	cfg.AcquisitionYearTo = intFromEnv("ACQ_YEAR_TO", cfg.AcquisitionYearTo)
	if v := strings.TrimSpace(os.Getenv("OUTPUT_DIR")); v != "" {
		cfg.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv("EXCEL_PATH")); v != "" {
		cfg.ExcelPath = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and that every approval distribution sums to 1.
func (c *RunConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("run config: %w", err)
	}
	for name, w := range map[string]ApprovalWeights{
		"acquisition": c.ApprovalAcquisition,
		"return":      c.ApprovalReturn,
		"disuse":      c.ApprovalDisuse,
		"disposal":    c.ApprovalDisposal,
	} {
		if math.Abs(w.sum()-1.0) > 1e-9 {
			return fmt.Errorf("run config: %s approval weights sum to %v, want 1", name, w.sum())
		}
	}
	if c.AcquisitionYearTo >= c.Today.Year() {
		return fmt.Errorf("run config: acquisition window end %d must predate reference year %d",
			c.AcquisitionYearTo, c.Today.Year())
	}
	return nil
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
