package dose

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/adaptivesurvey/dose/engineconfig"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/session"
)

// Engine is the package's registry of live sessions, each a
// session.Controller keyed by a generated UUID. Engine itself is safe for
// concurrent use by multiple goroutines; a given session's own Respond/
// Snapshot calls are not — callers must serialize those themselves.
type Engine struct {
	bank   *itembank.Bank
	config *engineconfig.Config

	mu       sync.RWMutex // guards sessions
	sessions map[string]*session.Controller
}

// NewEngine builds an Engine over a bank and configuration. Both must be
// non-nil; use itembank.ReferenceBank() and engineconfig.New() for the
// library defaults.
func NewEngine(bank *itembank.Bank, config *engineconfig.Config) *Engine {
	return &Engine{
		bank:     bank,
		config:   config,
		sessions: make(map[string]*session.Controller),
	}
}

// StartSession creates a new session, runs it to its first presented item,
// registers it under a freshly generated UUID, and returns the ID alongside
// the first item to present.
func (eng *Engine) StartSession() (string, session.CurrentItem, error) {
	ctrl := session.New(eng.bank, eng.config.Grid, eng.config.SEThreshold, eng.config.MaxItemsPerTrait)
	item, err := ctrl.Start()
	if err != nil {
		return "", session.CurrentItem{}, fmt.Errorf("dose: start session: %w", err)
	}

	id := uuid.NewString()

	eng.mu.Lock()
	eng.sessions[id] = ctrl
	eng.mu.Unlock()

	log.Debug().Str("session_id", id).Str("trait", string(item.Trait)).Msg("session started")

	return id, item, nil
}

// Respond applies one raw response to the named session's current item.
func (eng *Engine) Respond(sessionID string, rawResponse int) (session.Result, error) {
	ctrl, err := eng.lookup(sessionID)
	if err != nil {
		return session.Result{}, err
	}

	return ctrl.Respond(rawResponse)
}

// Snapshot returns the named session's current read-only state.
func (eng *Engine) Snapshot(sessionID string) (session.Snapshot, error) {
	ctrl, err := eng.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}

	return ctrl.Snapshot(), nil
}

// EndSession removes a session from the registry. It is a no-op if the
// session is already absent.
func (eng *Engine) EndSession(sessionID string) {
	eng.mu.Lock()
	delete(eng.sessions, sessionID)
	eng.mu.Unlock()
}

func (eng *Engine) lookup(sessionID string) (*session.Controller, error) {
	eng.mu.RLock()
	ctrl, ok := eng.sessions[sessionID]
	eng.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownSession
	}

	return ctrl, nil
}
