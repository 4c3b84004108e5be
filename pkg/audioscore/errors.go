package audioscore

import "github.com/joomcode/errorx"

// Errors is the namespace of every error kind the pipeline reports.
var Errors = errorx.NewNamespace("soundscore")

var (
	// IOError reports an input that cannot be read or an output location
	// that cannot be created.
	IOError = Errors.NewType("io_error")
	// FormatError reports an input that is not a supported PCM WAV file, or
	// a malformed class map.
	FormatError = Errors.NewType("format_error")
	// InferenceError reports a classifier failure or an output shape that
	// breaks the classifier contract.
	InferenceError = Errors.NewType("inference_error")
	// SerializationError reports a result file that could not be encoded or
	// written.
	SerializationError = Errors.NewType("serialization_error")
	// ConfigError reports invalid settings.
	ConfigError = Errors.NewType("config_error")
)
