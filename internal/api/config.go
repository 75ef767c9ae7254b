package api

// Config holds request limits read from the environment.
type Config struct {
	MaxLength int   `env:"UA_MAX_LENGTH" envDefault:"1024"` // bytes kept from each User-Agent
	MaxBatch  int   `env:"API_MAX_BATCH" envDefault:"1000"` // entries accepted by POST /v1/classify
	MaxBody   int64 `env:"API_MAX_BODY" envDefault:"0"`     // POST body bytes; 0 derives it from the two limits above
}

const defaultMaxBody = 8 << 20

// bodyLimit bounds the POST /v1/classify body. Each entry may be up to
// twice MaxLength to leave room for JSON escapes and for strings that are
// truncated after decoding.
func (c Config) bodyLimit() int64 {
	switch {
	case c.MaxBody > 0:
		return c.MaxBody
	case c.MaxBatch > 0 && c.MaxLength > 0:
		return int64(c.MaxBatch)*int64(2*c.MaxLength+16) + 64
	default:
		return defaultMaxBody
	}
}
