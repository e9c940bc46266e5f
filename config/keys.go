package config

const (
	delimiter = "."

	KeyPrefix = "fractal"

	KeyShape      = KeyPrefix + delimiter + "shape"
	KeyDimensions = KeyPrefix + delimiter + "dimensions"

	KeySubfractalPrefix    = KeyPrefix + delimiter + "subfractal"
	KeyInitialSubfractal   = KeySubfractalPrefix + delimiter + "initial_count"
	KeyRepeatingSubfractal = KeySubfractalPrefix + delimiter + "repeating_count"

	KeyChangeFraction = KeyPrefix + delimiter + "change_fraction"
	KeyIterations     = KeyPrefix + delimiter + "iterations"
	KeyPrecision      = KeyPrefix + delimiter + "precision"
	KeyTableSize      = KeyPrefix + delimiter + "table_size"

	KeyLoggingPrefix = "logging"
	KeyLoggingLevel  = KeyLoggingPrefix + delimiter + "level"
)
