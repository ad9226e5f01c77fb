// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character run ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique run IDs")
	}
}

func TestRunIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RunIDFromContext(ctx); id != "" {
		t.Errorf("expected empty run ID, got %s", id)
	}

	ctx = ContextWithRunID(ctx, "run-1234")
	if id := RunIDFromContext(ctx); id != "run-1234" {
		t.Errorf("expected run-1234, got %s", id)
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	t.Run("adds run id", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
		ctx = ContextWithRunID(ctx, "abc12345")

		Ctx(ctx).Info().Msg("with run")

		if !strings.Contains(buf.String(), `"run_id":"abc12345"`) {
			t.Errorf("expected run_id field, got: %s", buf.String())
		}
	})

	t.Run("without logger is silent", func(t *testing.T) {
		// Must not panic and must not write anywhere.
		Ctx(context.Background()).Info().Msg("dropped")
	})
}

func TestCtxOr(t *testing.T) {
	t.Parallel()

	t.Run("stored logger wins", func(t *testing.T) {
		var stored, fallback bytes.Buffer
		ctx := ContextWithLogger(context.Background(), NewTestLogger(&stored))

		CtxOr(ctx, NewTestLogger(&fallback)).Info().Msg("stored")

		if !strings.Contains(stored.String(), "stored") {
			t.Errorf("expected the stored logger to be used, got: %q", stored.String())
		}
		if fallback.Len() != 0 {
			t.Errorf("fallback must stay unused, got: %q", fallback.String())
		}
	})

	t.Run("fallback gets run id once", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ContextWithRunID(context.Background(), "abc12345")

		CtxOr(ctx, NewTestLogger(&buf)).Info().Msg("fallback")

		if got := strings.Count(buf.String(), `"run_id"`); got != 1 {
			t.Errorf("expected exactly one run_id field, got %d: %s", got, buf.String())
		}
	})
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := WithComponent(NewTestLogger(&buf), "graphql")
	logger.Info().Msg("tagged")

	if !strings.Contains(buf.String(), `"component":"graphql"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}
