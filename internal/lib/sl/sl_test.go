package sl_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/finher/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("connection refused")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("connection refused"), attr.Value)
}

func TestErr_WrappedError(t *testing.T) {
	err := fmt.Errorf("storage.GetUserByEmail: %w", errors.New("timeout"))
	attr := sl.Err(err)

	assert.Equal(t, "storage.GetUserByEmail: timeout", attr.Value.String())
}

func TestErr_NilError(t *testing.T) {
	assert.NotPanics(t, func() {
		attr := sl.Err(nil)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, "", attr.Value.String())
	})
}

func TestSetupLogger_Levels(t *testing.T) {
	ctx := context.Background()

	assert.True(t, sl.SetupLogger(sl.EnvLocal).Enabled(ctx, slog.LevelDebug))
	assert.True(t, sl.SetupLogger(sl.EnvDev).Enabled(ctx, slog.LevelDebug))
	assert.False(t, sl.SetupLogger(sl.EnvProd).Enabled(ctx, slog.LevelDebug))
	assert.True(t, sl.SetupLogger("unknown").Enabled(ctx, slog.LevelInfo))
}
