// Package report formats a falloff.Result for human consumption.
package report
