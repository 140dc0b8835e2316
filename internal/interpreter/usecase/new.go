package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
	pkgLog "schedule-interpreter/pkg/log"
)

// Config holds session sizing and defaults for new sessions.
type Config struct {
	AliasPrefix      string
	QueueCapacity    int
	SessionCacheSize int
	SessionTTL       time.Duration
	// Seed is loaded into every new session when set.
	Seed *model.Document
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	parser   *grammar.Parser
	dateMath *datemath.Parser
	sink     interpreter.PatchSink
	cfg      Config

	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

var _ interpreter.UseCase = (*implUseCase)(nil)

// New creates a new interpreter UseCase instance. sink may be nil.
func New(
	l pkgLog.Logger,
	parser *grammar.Parser,
	dateMath *datemath.Parser,
	sink interpreter.PatchSink,
	cfg Config,
) *implUseCase {
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = defaultSessionCacheSize
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &implUseCase{
		l:        l,
		parser:   parser,
		dateMath: dateMath,
		sink:     sink,
		cfg:      cfg,
		sessions: expirable.NewLRU[string, *session](cfg.SessionCacheSize, nil, cfg.SessionTTL),
	}
}
