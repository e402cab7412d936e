// Package dose implements an adaptive HEXACO-style personality-inventory
// measurement engine: a grid-discretized Bayesian item response theory (IRT)
// model under the graded response model (GRM), driving a six-trait adaptive
// session that selects each next item by maximum Fisher information and
// stops each trait independently once its posterior standard deviation
// drops below a configurable threshold or an item cap is reached.
//
// Engine is the package's thread-safe entry point: it owns a registry of
// concurrent sessions, each identified by a github.com/google/uuid session
// ID, guarded by a dedicated sync.RWMutex around the registry, with each
// individual session.Controller left single-threaded (callers must
// serialize StartSession/Respond/Snapshot calls for a given session ID
// themselves; the Engine only protects registry membership, not a single
// session's internal state).
//
// Subpackages:
//
//	grid/         — θ-axis discretization and rectangle-rule quadrature
//	grm/          — graded response model probability/information kernel
//	itembank/     — validated item bank, YAML loading, embedded reference bank
//	posterior/    — grid-based Bayesian posterior engine
//	trait/        — per-trait estimator and stopping rule
//	selector/     — maximum-information item selection
//	session/      — the session state machine and replay
//	scoring/      — fixed-form classical scoring and agreement statistics
//	engineconfig/ — functional-options configuration, YAML loading
//	cmd/dosectl/  — command-line demonstration driver
package dose
