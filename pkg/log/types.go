package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	requestIDField = "request_id"
)

type ctxKey struct{}
