package config

import "github.com/ayoisaiah/dayclock/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errUnsupportedLanguage = &apperr.Error{
		Message: "unsupported display language: %q (supported: en, fa)",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %q (supported: bolt, sqlite)",
	}

	errInvalidChartSize = &apperr.Error{
		Message: "chart size must be positive, got %d",
	}

	errInvalidRadius = &apperr.Error{
		Message: "chart radius (%d) must be positive and less than half the chart size (%d)",
	}

	errInvalidPort = &apperr.Error{
		Message: "chart port must be between 1 and 65535, got %d",
	}
)
