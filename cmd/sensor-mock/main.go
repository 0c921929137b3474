// Command sensor-mock streams synthetic DIPPID datagrams to a UDP port
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/sensor"
)

// mockFile is the on-disk layout, a [mocks] table plus optional transport overrides
type mockFile struct {
	Addr     string            `toml:"addr"`
	Interval time.Duration     `toml:"interval"`
	Mocks    sensor.MockConfig `toml:"mocks"`
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML file with a [mocks] table, defaults to a tilting phone")
		addr       = flag.String("addr", fmt.Sprintf("127.0.0.1:%d", parameter.PlayerLeftPort), "Destination host:port")
		interval   = flag.Duration("interval", parameter.MockSendInterval, "Send interval")
		verbose    = flag.Bool("verbose", false, "Log every datagram")
		truncate   = flag.Int("truncate", -1, "Round values to this many decimals, negative keeps full precision")
		seed       = flag.Uint64("seed", 0, "Noise seed, 0 picks one from the clock")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	file, err := loadMockFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sensor-mock: %v\n", err)
		os.Exit(1)
	}
	// Explicit flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			file.Addr = *addr
		case "interval":
			file.Interval = *interval
		}
	})
	if file.Addr == "" {
		file.Addr = *addr
	}
	if file.Interval == 0 {
		file.Interval = *interval
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	gen, err := sensor.NewGenerator(file.Mocks, s, *truncate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sensor-mock: %v\n", err)
		os.Exit(1)
	}
	sender, err := sensor.NewSender(gen, file.Addr, file.Interval, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sensor-mock: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("sending", "addr", file.Addr, "interval", file.Interval, "capabilities", len(file.Mocks))
	if err := sender.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sensor-mock: %v\n", err)
		os.Exit(1)
	}
}

// loadMockFile decodes path, an empty path yields the default mock set
func loadMockFile(path string) (mockFile, error) {
	if path == "" {
		return mockFile{Mocks: sensor.DefaultMockConfig()}, nil
	}
	var f mockFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return mockFile{}, errors.Wrapf(err, "decode %s", path)
	}
	if len(f.Mocks) == 0 {
		return mockFile{}, errors.Errorf("%s defines no [mocks]", path)
	}
	return f, nil
}
