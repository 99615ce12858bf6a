package config

// ANSI colours for the viewer's log lines.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogWarnColor  = "\033[33m"
	LogColorReset = "\033[0m"
)

// ColorCyan marks the logger name prefix.
const ColorCyan = "\033[36m"
