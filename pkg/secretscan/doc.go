// Package secretscan holds the public contract of the secret scanner:
// detection rules, per-file results, the scan summary, the logging and
// retry interfaces, sentinel errors and the exit-code policy.
package secretscan
