package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/testutil"
)

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		divide bool
		want   uint64
	}{
		{"depth 1", 1, false, 20},
		{"depth 2", 2, false, 400},
		{"divide depth 2", 2, true, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.NewConfigBuilder().WithOutput(&buf).WithLog(io.Discard).Build()

			got := runPerft(cfg, chess.NewInitialBoard(), tt.depth, tt.divide)
			if got != tt.want {
				t.Errorf("runPerft() = %d, want %d", got, tt.want)
			}
			testutil.AssertContains(t, buf.String(), "Nodes searched: ")
			if tt.divide {
				testutil.AssertContains(t, buf.String(), "b1a3: 20\n")
				if lines := strings.Count(buf.String(), ": 20\n"); lines != 20 {
					t.Errorf("divide printed %d root lines, want 20", lines)
				}
			}
		})
	}
}
