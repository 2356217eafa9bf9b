package common

type Params struct {
	seedPath   string
	scriptPath string
	logLevel   string
	queueSize  int
}

const DefaultQueueSize = 100

func NewEmptyParams() *Params {
	return &Params{
		queueSize: DefaultQueueSize,
		logLevel:  "INFO",
	}
}

func NewParams(seedPath string, scriptPath string, logLevel string, queueSize int) *Params {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Params{
		seedPath:   seedPath,
		scriptPath: scriptPath,
		logLevel:   logLevel,
		queueSize:  queueSize,
	}
}

// SeedPath is the TOML file with the initial gallery. Empty means an empty
// gallery.
func (s *Params) SeedPath() string {
	return s.seedPath
}

// ScriptPath is the file to read events from. Empty means stdin.
func (s *Params) ScriptPath() string {
	return s.scriptPath
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) QueueSize() int {
	return s.queueSize
}
