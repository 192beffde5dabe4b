package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pinmap/config"
	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT * FROM "pins"`, 2 }

	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "query error", begin: time.Now(), err: errors.New("syntax error"), want: "GORM query failed"},
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "GORM query failed"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "r-1")))

	l.Error(ctx, "boom %d", 1)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=r-1")
	assert.Contains(t, scoped.String(), "boom 1")
}
