package log

// ZapConfig holds logger construction options.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool   // colorize levels (console encoding only)
}
