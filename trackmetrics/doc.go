// Package trackmetrics instruments a tracks.Builder with Prometheus metrics.
// It is one of the two ambient-stack seams the otherwise pure tracks package
// accepts (the other is its *slog.Logger): a *Recorder is optional, and every method is nil-safe, so a Builder used
// without Prometheus wired in behaves exactly as if metrics did not exist.
package trackmetrics
