package dpllsat

// LoggingListener logs every search event through a Logger, at debug
// level. It is the logging-adapter built-in: useful on its own under -v,
// or alongside StatisticsListener/ChronoListener for a running narration
// of a solve.
type LoggingListener struct {
	NoopListener

	log Logger
}

// NewLoggingListener returns a LoggingListener that logs through log. A nil
// log is replaced by NopLogger.
func NewLoggingListener(log Logger) *LoggingListener {
	if log == nil {
		log = NopLogger{}
	}
	return &LoggingListener{log: log}
}

func (l *LoggingListener) Init() {
	l.log.Debugf("solver initialized")
}

func (l *LoggingListener) OnDecide(lit Literal) {
	l.log.Debugf("decided literal %s", lit)
}

func (l *LoggingListener) OnPropagate(lit Literal, clause *Clause) {
	if clause == nil {
		// Assertions made on backtrack carry no originating clause.
		l.log.Debugf("propagated literal %s", lit)
		return
	}
	l.log.Debugf("propagated literal %s from clause %d", lit, clause.ID())
}

func (l *LoggingListener) OnAssert(lit Literal) {
	l.log.Debugf("asserted literal %s", lit)
}

func (l *LoggingListener) OnConflict(clause *Clause) {
	l.log.Debugf("clause %d generated a conflict", clause.ID())
}

func (l *LoggingListener) OnBacktrack(lit Literal) {
	l.log.Debugf("backtracked literal %s", lit)
}

func (l *LoggingListener) Cleanup() {
	l.log.Debugf("solver cleaned up")
}
