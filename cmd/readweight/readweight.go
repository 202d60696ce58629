package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fako1024/serialscale/pkg/mock"
	"github.com/fako1024/serialscale/pkg/record"
	"github.com/fako1024/serialscale/pkg/scale"
	"github.com/fako1024/serialscale/pkg/serialscale"
)

const version = "0.1"

var errDeviceRequired = errors.New("if not using test data you must specify a scale device")

type config struct {
	device string
	dir    string
	file   string
	ext    string
	test   bool

	baudRate    int
	readTimeout time.Duration
	listPorts   bool
	debug       bool
	version     bool
}

func (c config) validate() error {
	if !c.test && !c.listPorts && !c.version && c.device == "" {
		return errDeviceRequired
	}
	return nil
}

func main() {

	// Parse command line options
	var cfg config

	flag.StringVar(&cfg.device, "s", "", "The weight scale device to use, e.g. COM4 or /dev/ttyUSB0 (shorthand)")
	flag.StringVar(&cfg.device, "scale", "", "The weight scale device to use, e.g. COM4 or /dev/ttyUSB0")
	flag.StringVar(&cfg.dir, "d", ".", "The output directory for written files (shorthand)")
	flag.StringVar(&cfg.dir, "dir", ".", "The output directory for written files")
	flag.StringVar(&cfg.file, "f", "read_weight", "The name of the output file (shorthand)")
	flag.StringVar(&cfg.file, "file-name", "read_weight", "The name of the output file")
	flag.StringVar(&cfg.ext, "e", "csv", "The extension of the output file, without preceding dot (shorthand)")
	flag.StringVar(&cfg.ext, "ext", "csv", "The extension of the output file, without preceding dot")
	flag.BoolVar(&cfg.test, "t", false, "Use test data instead of reading from scale device (shorthand)")
	flag.BoolVar(&cfg.test, "test", false, "Use test data instead of reading from scale device")

	flag.IntVar(&cfg.baudRate, "baud", 9600, "Baud rate of the scale device")
	flag.DurationVar(&cfg.readTimeout, "timeout", time.Second, "Maximum time to wait for data from the scale device per read")
	flag.BoolVar(&cfg.listPorts, "list", false, "List available serial ports and exit")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&cfg.version, "version", false, "Print version information and exit")
	flag.Parse()

	if cfg.version {
		printVersion(os.Stdout)
		return
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	log, err := scale.NewDefaultLogger(cfg.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to instantiate logger: %s\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, log scale.Logger) error {

	if cfg.listPorts {
		ports, err := serialscale.ListPorts()
		if err != nil {
			return fmt.Errorf("failed to list serial ports: %w", err)
		}
		for _, port := range ports {
			fmt.Println(port)
		}
		return nil
	}

	log.Debugf("Args: s: %s d: %s f: %s e: %s t: %v", cfg.device, cfg.dir, cfg.file, cfg.ext, cfg.test)

	s, err := openScale(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Debugf("failed to close scale device: %s", cerr)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	defer closeOnSignal(sigChan, s, log)()

	path := record.FilePath(cfg.dir, cfg.file, cfg.ext)
	if err := measure(s, path, record.New(), log); err != nil {
		return err
	}

	fmt.Printf("Written: %s\n", path)
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Weight Reader %s\n", version)
}

// closeOnSignal closes s (unblocking a pending read) upon reception of a signal
// on sigChan. The returned function stops watching and waits for the watcher to exit
func closeOnSignal(sigChan <-chan os.Signal, s io.Closer, log scale.Logger) (stop func()) {
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case sig := <-sigChan:
			log.Infof("Got signal %v, terminating connection to device", sig)
			if err := s.Close(); err != nil {
				log.Warnf("failed to close scale device: %s", err)
			}
		case <-done:
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func openScale(cfg config, log scale.Logger) (scale.Scale, error) {
	if cfg.test {
		log.Infof("Using test data, not reading from device")
		return mock.New()
	}

	s, err := serialscale.New(
		serialscale.WithDeviceName(cfg.device),
		serialscale.WithBaudRate(cfg.baudRate),
		serialscale.WithReadTimeout(cfg.readTimeout),
		serialscale.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scale: %w", err)
	}

	return s, nil
}

// measure reads a single weight from s and writes it to path. Nothing is
// written if no weight could be obtained
func measure(s scale.Scale, path string, w *record.Writer, log scale.Logger) error {

	dataPoint, err := s.ReadWeight()
	if err != nil {
		return err
	}
	log.Debugf("obtained %d%s within %v", dataPoint.Weight, dataPoint.Unit, s.ElapsedTime())

	if _, err := w.Write(path, dataPoint.Weight); err != nil {
		return err
	}

	return nil
}
