package errorhandler

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

// Logger is informed about every validation error the middleware handles.
type Logger func(err *validation.ValidationError, c *fiber.Ctx)

// ResponseTransformer turns a validation error into the response body.
// A string result is sent as text; anything else is encoded as JSON.
// Use c to set extra headers if needed.
type ResponseTransformer func(err *validation.ValidationError, c *fiber.Ctx) any

type logMode int

const (
	logDisabled logMode = iota
	logDefault
	logCustom
)

// LogOption selects how validation errors are logged. The zero value
// disables logging.
type LogOption struct {
	mode logMode
	fn   Logger
}

// LogDisabled turns logging off.
func LogDisabled() LogOption { return LogOption{mode: logDisabled} }

// LogDefault writes "<method> <url>: <message>" lines to Config.Output.
func LogDefault() LogOption { return LogOption{mode: logDefault} }

// LogWith hands every handled error to fn.
func LogWith(fn Logger) LogOption { return LogOption{mode: logCustom, fn: fn} }

// Config defines the config for the middleware.
type Config struct {
	// Log selects the logging behaviour.
	//
	// Optional. Default: LogDisabled()
	Log LogOption

	// TransformResponse builds the 400 response body.
	//
	// Optional. Default: DefaultTransformer
	TransformResponse ResponseTransformer

	// Output is where LogDefault writes.
	//
	// Optional. Default: os.Stderr
	Output io.Writer
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Log:               LogDisabled(),
	TransformResponse: DefaultTransformer,
	Output:            os.Stderr,
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]
	if cfg.TransformResponse == nil {
		cfg.TransformResponse = ConfigDefault.TransformResponse
	}
	if cfg.Output == nil {
		cfg.Output = ConfigDefault.Output
	}
	return cfg
}

// resolve picks the concrete logger once, at construction time.
func (cfg Config) resolve() Logger {
	switch cfg.Log.mode {
	case logDefault:
		return newDefaultLogger(cfg.Output)
	case logCustom:
		if cfg.Log.fn != nil {
			return cfg.Log.fn
		}
	}
	return func(*validation.ValidationError, *fiber.Ctx) {}
}
