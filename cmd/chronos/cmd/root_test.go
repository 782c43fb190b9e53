package cmd

import (
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	cconfig "github.com/msto63/chronos/foundation/core/config"
	"github.com/msto63/chronos/foundation/core/log"

	"github.com/msto63/chronos/internal/clock"
	"github.com/msto63/chronos/internal/output"
)

func testConfig(t *testing.T, content string) *cconfig.Config {
	t.Helper()
	cfg, err := cconfig.LoadFromString(content, cconfig.FormatTOML)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}

func quietLogger() *log.Logger {
	return log.NewWithConfig(log.Config{Level: log.LevelError, Output: io.Discard})
}

func TestBuildMode(t *testing.T) {
	testCases := []struct {
		name    string
		sel     modeSelection
		cfg     string
		want    output.Mode
		wantErr string
	}{
		{
			name: "epoch",
			sel:  modeSelection{epoch: true},
			want: output.Mode{Kind: output.KindEpoch},
		},
		{
			name: "millis",
			sel:  modeSelection{millis: true},
			want: output.Mode{Kind: output.KindMillis},
		},
		{
			name: "readable with zone",
			sel:  modeSelection{readable: true, zone: "UTC"},
			want: output.Mode{Kind: output.KindReadable, Zone: output.ZoneUTC},
		},
		{
			name: "zone is case-insensitive",
			sel:  modeSelection{readable: true, zone: "local"},
			want: output.Mode{Kind: output.KindReadable, Zone: output.ZoneLocal},
		},
		{
			name:    "no mode and no config",
			sel:     modeSelection{},
			wantErr: "genau eine",
		},
		{
			name:    "readable without zone",
			sel:     modeSelection{readable: true},
			wantErr: "--output",
		},
		{
			name:    "zone without readable",
			sel:     modeSelection{epoch: true, zone: "UTC"},
			wantErr: "--readable",
		},
		{
			name:    "more than one mode",
			sel:     modeSelection{epoch: true, millis: true},
			wantErr: "gegenseitig",
		},
		{
			name:    "invalid zone",
			sel:     modeSelection{readable: true, zone: "CET"},
			wantErr: "UTC oder Local",
		},
		{
			name: "mode from config",
			sel:  modeSelection{},
			cfg:  "[output]\nmode = \"millis\"\n",
			want: output.Mode{Kind: output.KindMillis},
		},
		{
			name: "zone from config",
			sel:  modeSelection{readable: true},
			cfg:  "[output]\nzone = \"Local\"\n",
			want: output.Mode{Kind: output.KindReadable, Zone: output.ZoneLocal},
		},
		{
			name: "flag zone beats config zone",
			sel:  modeSelection{readable: true, zone: "UTC"},
			cfg:  "[output]\nzone = \"Local\"\n",
			want: output.Mode{Kind: output.KindReadable, Zone: output.ZoneUTC},
		},
		{
			name: "flag mode beats config mode",
			sel:  modeSelection{epoch: true},
			cfg:  "[output]\nmode = \"readable\"\nzone = \"UTC\"\n",
			want: output.Mode{Kind: output.KindEpoch},
		},
		{
			name:    "invalid configured mode",
			sel:     modeSelection{},
			cfg:     "[output]\nmode = \"nanos\"\n",
			wantErr: "output.mode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg *cconfig.Config
			if tc.cfg != "" {
				cfg = testConfig(t, tc.cfg)
			}

			got, err := buildMode(tc.sel, cfg)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("buildMode(%+v) expected error containing %q", tc.sel, tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error %q should contain %q", err.Error(), tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildMode(%+v) unexpected error: %v", tc.sel, err)
			}
			if got != tc.want {
				t.Errorf("buildMode(%+v) = %+v, want %+v", tc.sel, got, tc.want)
			}
		})
	}
}

func TestResolveAndFormatPipeline(t *testing.T) {
	now := time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.Fixed{Instant: now}

	t.Run("relative to epoch", func(t *testing.T) {
		got, err := resolveAndFormat("2 hours ago", output.Mode{Kind: output.KindEpoch}, clk, time.UTC, quietLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := strconv.FormatInt(now.Add(-2*time.Hour).Unix(), 10)
		if got != want {
			t.Errorf("result = %q, want %q", got, want)
		}
	})

	t.Run("absolute to readable", func(t *testing.T) {
		got, err := resolveAndFormat("2022-02-02T01:00:00Z",
			output.Mode{Kind: output.KindReadable, Zone: output.ZoneUTC}, clk, time.UTC, quietLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "2022-02-02T01:00:00Z"; got != want {
			t.Errorf("result = %q, want %q", got, want)
		}
	})

	t.Run("empty input is now", func(t *testing.T) {
		got, err := resolveAndFormat("", output.Mode{Kind: output.KindMillis}, clk, time.UTC, quietLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := strconv.FormatInt(now.UnixMilli(), 10); got != want {
			t.Errorf("result = %q, want %q", got, want)
		}
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, err := resolveAndFormat("not a date", output.Mode{Kind: output.KindEpoch}, clk, time.UTC, quietLogger())
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "not a date") {
			t.Errorf("error should quote the input, got: %v", err)
		}
	})
}
