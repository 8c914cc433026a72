package simcluster

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
)

// Mode selects the clustering algorithm.
type Mode string

const (
	ModeDBSCAN Mode = "dbscan"
	ModeHAC    Mode = "hac"

	// ModeMean is a historical alias for ModeMedoid: both run the same
	// medoid partitioner. No centroid averaging takes place in either.
	ModeMean   Mode = "mean"
	ModeMedoid Mode = "medoid"
)

// Linkage selects how HAC derives inter-cluster distance from member pairs.
type Linkage string

const (
	SingleLinkage   Linkage = "single"
	CompleteLinkage Linkage = "complete"
	AverageLinkage  Linkage = "average"
)

var (
	// ErrInvalidK is returned when the requested cluster count is outside
	// [1, n] for medoid partitioning, or cannot be searched automatically.
	ErrInvalidK = errors.New("simcluster: k out of range")

	// ErrUnknownMode is returned for a Mode the dispatcher does not recognize.
	ErrUnknownMode = errors.New("simcluster: unknown mode")
)

// Config controls clustering behavior. Start with [DefaultConfig] and set the
// fields your mode needs. Zero values for K, Eps and MinPts mean "absent":
// Cluster uses them as-is, AutoCluster fills them in.
type Config struct {
	// Mode selects the algorithm: "dbscan", "hac", "mean" or "medoid"
	// ("mean" and "medoid" are aliases for the same medoid partitioner).
	Mode Mode

	// K is the target cluster count for hac/mean/medoid. 0 means absent:
	// AutoCluster searches candidate values by silhouette score.
	K int

	// Linkage is the HAC inter-cluster distance rule. Default: "average".
	Linkage Linkage

	// Eps is the DBSCAN neighborhood radius (inclusive). 0 means absent:
	// AutoCluster estimates it from the k-distance elbow.
	Eps float64

	// MinPts is the DBSCAN density threshold. A point needs at least MinPts
	// neighbors within Eps (itself excluded) to seed a cluster. 0 means
	// absent: AutoCluster defaults it to clamp(4, 2, n-1).
	MinPts int

	// MaxIterations caps medoid update rounds. Default: 100.
	MaxIterations int

	// Rand is the random source for medoid initialization. Nil means a
	// time-seeded source; inject a seeded source for deterministic runs.
	Rand *rand.Rand

	// Workers controls parallelism of AutoCluster's k-search. Candidates
	// are still compared in ascending-k order, so results are identical
	// at any worker count. 0 means runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// SkipNormalization makes AutoCluster treat its input as a similarity
	// matrix already bounded to [0,1], converting via 1-x without min-max
	// rescaling. Default: false (normalize).
	SkipNormalization bool

	// Diagnostics receives non-fatal events from metric computations.
	// Nil discards them. See LogDiagnostics for a zap adapter.
	Diagnostics DiagnosticHandler
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Linkage:       AverageLinkage,
		MaxIterations: 100,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Linkage == "" {
		cfg.Linkage = AverageLinkage
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 100
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Mode {
	case ModeDBSCAN, ModeHAC, ModeMean, ModeMedoid:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
	switch cfg.Linkage {
	case SingleLinkage, CompleteLinkage, AverageLinkage:
		// valid
	default:
		return fmt.Errorf("simcluster: invalid Linkage %q", cfg.Linkage)
	}
	if cfg.Eps < 0 {
		return fmt.Errorf("simcluster: Eps must be >= 0, got %f", cfg.Eps)
	}
	if cfg.MinPts < 0 {
		return fmt.Errorf("simcluster: MinPts must be >= 0 (0 means auto), got %d", cfg.MinPts)
	}
	if cfg.K < 0 {
		return fmt.Errorf("simcluster: K must be >= 0 (0 means auto), got %d", cfg.K)
	}
	return nil
}

// validateMatrix checks that dist is square: every row must have length
// len(dist). Symmetry and a zero diagonal are the caller's contract and are
// not enforced.
func validateMatrix(dist [][]float64) error {
	n := len(dist)
	for i, row := range dist {
		if len(row) != n {
			return fmt.Errorf("simcluster: matrix row %d has length %d, want %d", i, len(row), n)
		}
	}
	return nil
}

// Cluster routes cfg to the algorithm selected by cfg.Mode and runs it once
// on the given distance matrix. All hyperparameters are used exactly as
// configured; use AutoCluster to fill in absent ones.
func Cluster(dist [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateMatrix(dist); err != nil {
		return nil, err
	}

	switch cfg.Mode {
	case ModeDBSCAN:
		return DBSCAN(dist, cfg.Eps, cfg.MinPts), nil
	case ModeHAC:
		return HAC(dist, cfg.K, cfg.Linkage), nil
	default:
		// ModeMean, ModeMedoid: identical mechanics, one partitioner.
		return KMedoids(dist, cfg.K, cfg.MaxIterations, cfg.Rand)
	}
}
