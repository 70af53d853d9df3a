// export_test.go exports private functions for white-box testing.
package logger

// FormatError renders err the way Logger.Error does in pretty mode.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
