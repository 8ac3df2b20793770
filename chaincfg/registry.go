package chaincfg

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lavrovcoin/lavrovd/errors"
	"github.com/lavrovcoin/lavrovd/ulogger"
	"github.com/looplab/fsm"
)

const (
	stateUninitialized = "UNINITIALIZED"
	stateSelected      = "SELECTED"

	eventSelect = "SELECT"
	eventReset  = "RESET"
)

// Registry owns the four network profiles and the process selection. The
// profiles are built once in NewRegistry; selection is serialized by mu. The
// profiles and the selection are published through atomic pointers, so readers
// never lock.
type Registry struct {
	logger   ulogger.Logger
	profiles [numNetworkKinds]atomic.Pointer[Params]

	now func() time.Time
	rng Int63nSource

	mu      sync.Mutex
	state   *fsm.FSM
	current atomic.Pointer[Params]
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock sets the time the fixed seed timestamps are drawn relative to.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRand sets the randomness source of the fixed seed timestamps.
func WithRand(rng Int63nSource) RegistryOption {
	return func(r *Registry) {
		r.rng = rng
	}
}

// NewRegistry builds the Main profile and derives Test, RegTest and UnitTest
// from it. No network is selected afterwards.
func NewRegistry(logger ulogger.Logger, opts ...RegistryOption) (*Registry, error) {
	initPrometheusMetrics()

	r := &Registry{
		logger: logger,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.buildProfiles(); err != nil {
		return nil, err
	}

	r.state = newSelectionStateMachine()

	return r, nil
}

func (r *Registry) buildProfiles() error {
	now := r.now()

	main, err := newMainParams(now, r.rng)
	if err != nil {
		return errors.NewConfigurationError("failed to build %s profile", Main, err)
	}

	test, err := newTestParams(main, now, r.rng)
	if err != nil {
		return errors.NewConfigurationError("failed to build %s profile", Test, err)
	}

	regTest, err := newRegTestParams(test)
	if err != nil {
		return errors.NewConfigurationError("failed to build %s profile", RegTest, err)
	}

	unitTest, err := newUnitTestParams(main)
	if err != nil {
		return errors.NewConfigurationError("failed to build %s profile", UnitTest, err)
	}

	r.profiles[Main].Store(main)
	r.profiles[Test].Store(test)
	r.profiles[RegTest].Store(regTest)
	r.profiles[UnitTest].Store(unitTest)

	return nil
}

func (r *Registry) profile(kind NetworkKind) *Params {
	return r.profiles[kind].Load()
}

// newSelectionStateMachine creates the selection state machine. A registry
// starts uninitialized and moves to selected exactly once; only Reset goes
// back.
func newSelectionStateMachine() *fsm.FSM {
	return fsm.NewFSM(
		stateUninitialized,
		fsm.Events{
			{
				Name: eventSelect,
				Src:  []string{stateUninitialized},
				Dst:  stateSelected,
			},
			{
				Name: eventReset,
				Src:  []string{stateSelected},
				Dst:  stateUninitialized,
			},
		},
		fsm.Callbacks{},
	)
}

// Select verifies the genesis block of kind and makes it the current
// profile. Selecting the already selected kind again does nothing, any other
// kind fails with ERR_INVALID_NETWORK_SELECTION.
func (r *Registry) Select(kind NetworkKind) error {
	if !kind.IsValid() {
		prometheusChaincfgSelectErrors.WithLabelValues("unknown_kind").Inc()
		return errors.NewInvalidNetworkSelectionError("unknown network kind %d", uint8(kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Current() == stateSelected {
		current := r.current.Load()
		if current.Kind == kind {
			return nil
		}

		prometheusChaincfgSelectErrors.WithLabelValues("already_selected").Inc()

		return errors.NewInvalidNetworkSelectionError("cannot select %s, network %s is already selected", kind, current.Kind)
	}

	p := r.profile(kind)

	prometheusChaincfgGenesisChecks.WithLabelValues(p.Name).Inc()

	if err := p.VerifyGenesis(); err != nil {
		prometheusChaincfgSelectErrors.WithLabelValues("genesis").Inc()
		return err
	}

	r.logger.Debugf("[chaincfg] %s genesis %s verified", p.Name, p.GenesisHash)

	if err := r.state.Event(context.Background(), eventSelect); err != nil {
		return errors.NewProcessingError("[chaincfg] failed to select %s", kind, err)
	}

	r.current.Store(p)

	prometheusChaincfgSelected.WithLabelValues(p.Name).Set(1)
	r.logger.Infof("[chaincfg] selected network %s (magic %x, port %d)", p.Name, p.MessageStart(), p.DefaultPort)

	return nil
}

// Current returns the selected profile.
func (r *Registry) Current() (*Params, error) {
	p := r.current.Load()
	if p == nil {
		return nil, errors.NewInvalidNetworkSelectionError("no network has been selected")
	}

	return p, nil
}

// ProfileFor returns the profile of kind whether or not it is selected. The
// same pointer is returned on every call. It panics on a kind outside the
// enumeration.
func (r *Registry) ProfileFor(kind NetworkKind) *Params {
	if !kind.IsValid() {
		panic(errors.NewInvalidNetworkSelectionError("unknown network kind %d", uint8(kind)))
	}

	return r.profile(kind)
}

// UnitTestParams returns the mutation handle of the UnitTest profile. It
// fails unless UnitTest is the selected network.
func (r *Registry) UnitTestParams() (*UnitTestParams, error) {
	p, err := r.Current()
	if err != nil {
		return nil, err
	}

	if p.Kind != UnitTest {
		return nil, errors.NewInvalidNetworkSelectionError("parameters of %s cannot be modified, only %s", p.Kind, UnitTest)
	}

	return &UnitTestParams{registry: r, params: p}, nil
}

// Reset clears the selection and rebuilds the UnitTest profile so changes
// made through UnitTestParams do not leak into the next selection. Readers
// holding the previous UnitTest profile keep their copy. Only tests call it.
func (r *Registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Current() != stateSelected {
		return nil
	}

	previous := r.current.Load()

	unitTest, err := newUnitTestParams(r.profile(Main))
	if err != nil {
		return errors.NewConfigurationError("failed to rebuild %s profile", UnitTest, err)
	}

	if err = r.state.Event(context.Background(), eventReset); err != nil {
		return errors.NewProcessingError("[chaincfg] failed to reset selection", err)
	}

	r.profiles[UnitTest].Store(unitTest)
	r.current.Store(nil)

	prometheusChaincfgSelected.WithLabelValues(previous.Name).Set(0)
	r.logger.Infof("[chaincfg] network selection %s reset", previous.Name)

	return nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryErr  error
	defaultRegistryOnce sync.Once
)

// InitDefaultRegistry builds the process registry with logger. It must run
// before any other package level function to take effect; later calls are
// ignored.
func InitDefaultRegistry(logger ulogger.Logger, opts ...RegistryOption) error {
	defaultRegistryOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = NewRegistry(logger, opts...)
	})

	return defaultRegistryErr
}

// DefaultRegistry returns the process registry, building it with a default
// logger when InitDefaultRegistry has not run.
func DefaultRegistry() *Registry {
	if err := InitDefaultRegistry(ulogger.New("chaincfg")); err != nil {
		panic(err)
	}

	return defaultRegistry
}

// SelectNetwork selects kind for the whole process. It panics when the
// selection is invalid or the genesis block does not verify.
func SelectNetwork(kind NetworkKind) {
	if err := DefaultRegistry().Select(kind); err != nil {
		panic(err)
	}
}

// CurrentProfile returns the process wide selected profile. It panics when no
// network has been selected.
func CurrentProfile() *Params {
	p, err := DefaultRegistry().Current()
	if err != nil {
		panic(err)
	}

	return p
}

// ProfileFor returns the profile of kind from the process registry.
func ProfileFor(kind NetworkKind) *Params {
	return DefaultRegistry().ProfileFor(kind)
}

// ModifiableParams returns the UnitTest mutation handle. It panics unless
// UnitTest is the selected network.
func ModifiableParams() *UnitTestParams {
	p, err := DefaultRegistry().UnitTestParams()
	if err != nil {
		panic(err)
	}

	return p
}

// ResetSelection clears the process selection. Only tests call it.
func ResetSelection() {
	if err := DefaultRegistry().Reset(); err != nil {
		panic(err)
	}
}

// IsPubKeyHashAddrID checks id against the process registry.
func IsPubKeyHashAddrID(id byte) bool {
	return DefaultRegistry().IsPubKeyHashAddrID(id)
}

// IsScriptHashAddrID checks id against the process registry.
func IsScriptHashAddrID(id byte) bool {
	return DefaultRegistry().IsScriptHashAddrID(id)
}

// HDPrivateKeyToPublicKeyID looks id up in the process registry.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	return DefaultRegistry().HDPrivateKeyToPublicKeyID(id)
}
