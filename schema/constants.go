package schema

import "errors"

// Custom string types for type safety.
type (
	// FeatureKey identifies one dimension of the feature vector.
	FeatureKey string

	// Category represents a design category used for one-hot encoding.
	Category string

	// DetailLevel selects the UI element detector implementation.
	DetailLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the corpus store.
	DatabaseBackend string
)

// Design categories encoded as one-hot flags in the feature vector.
const (
	LandingPage Category = "landing-page"
	Dashboard   Category = "dashboard"
	MobileApp   Category = "mobile-app"
	Ecommerce   Category = "e-commerce"
)

// Detail levels for the element detector.
const (
	BasicDetail    DetailLevel = "basic"    // Window-scan rectangle heuristics only
	EnhancedDetail DetailLevel = "enhanced" // Adds pattern repetition and icon/image estimators
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All database backends supported for the corpus store.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidCategories is the allow-list for category labels.
var ValidCategories = map[Category]struct{}{
	LandingPage: {},
	Dashboard:   {},
	MobileApp:   {},
	Ecommerce:   {},
}

// ValidDetailLevels is the allow-list for detector selection.
var ValidDetailLevels = map[DetailLevel]struct{}{
	BasicDetail:    {},
	EnhancedDetail: {},
}

// ValidOutputModes is the allow-list for output formats.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends is the allow-list for corpus backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Sentinel errors surfaced by the engine.
var (
	// ErrEmptyPixelBuffer reports a buffer with zero pixels or invalid
	// dimensions. This is the only hard failure the pipeline returns.
	ErrEmptyPixelBuffer = errors.New("pixel buffer has no pixels or invalid dimensions")

	// ErrDimensionMismatch reports a feature vector whose length does not
	// match the schema.
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")

	// ErrSchemaVersionMismatch reports a corpus entry computed under a
	// different feature schema version.
	ErrSchemaVersionMismatch = errors.New("feature schema version mismatch")
)
