package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter", in: "curl/8.0", n: 16, want: "curl/8.0"},
		{name: "exact", in: "curl/8.0", n: 8, want: "curl/8.0"},
		{name: "cut", in: "curl/8.0.1", n: 6, want: "curl/8"},
		{name: "no limit", in: "curl/8.0.1", n: 0, want: "curl/8.0.1"},
		{name: "rune boundary", in: "héllo", n: 2, want: "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	assert.Nil(t, optional(""))
	if p := optional("Linux"); assert.NotNil(t, p) {
		assert.Equal(t, "Linux", *p)
	}
}

func TestConfigBodyLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want int64
	}{
		{name: "derived", cfg: Config{MaxBatch: 1, MaxLength: 1024}, want: 2*1024 + 16 + 64},
		{name: "explicit wins", cfg: Config{MaxBatch: 1, MaxLength: 1024, MaxBody: 512}, want: 512},
		{name: "no entry limit", cfg: Config{MaxLength: 1024}, want: defaultMaxBody},
		{name: "no length limit", cfg: Config{MaxBatch: 10}, want: defaultMaxBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.bodyLimit())
		})
	}
}
