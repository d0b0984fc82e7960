package main

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-i2p/go-monotime/lib/monotonic"
)

// clockInfo is the report printed by the info subcommand.
type clockInfo struct {
	Source   string            `yaml:"source"`
	OS       string            `yaml:"os"`
	Arch     string            `yaml:"arch"`
	Reading  float64           `yaml:"reading_seconds"`
	ReadCost string            `yaml:"read_cost"`
	Details  map[string]string `yaml:"details,omitempty"`
}

// readCostSamples is how many reads the info subcommand averages over
// when timing a single clock read.
const readCostSamples = 1000

func newInfoCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the resolved clock source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", `output format, "text" or "yaml"`)
	return cmd
}

func runInfo(cmd *cobra.Command, format string) error {
	info, err := collectInfo()
	if err != nil {
		return err
	}

	switch format {
	case "text":
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "source:    %s\n", info.Source)
		fmt.Fprintf(out, "os:        %s\n", info.OS)
		fmt.Fprintf(out, "arch:      %s\n", info.Arch)
		fmt.Fprintf(out, "reading:   %.9f s\n", info.Reading)
		fmt.Fprintf(out, "read cost: %s\n", info.ReadCost)
		if len(info.Details) > 0 {
			fmt.Fprintln(out, "details:")
			keys := make([]string, 0, len(info.Details))
			for k := range info.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %s: %s\n", k, info.Details[k])
			}
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q, want \"text\" or \"yaml\"", format)
	}
}

func collectInfo() (*clockInfo, error) {
	clock, err := monotonic.Resolve()
	if err != nil {
		return nil, err
	}
	reading, err := clock.Now()
	if err != nil {
		return nil, err
	}
	cost, err := measureReadCost(clock)
	if err != nil {
		return nil, err
	}
	return &clockInfo{
		Source:   clock.Source(),
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Reading:  reading,
		ReadCost: cost.String(),
		Details:  clock.Details(),
	}, nil
}

// measureReadCost times a burst of clock reads with the clock itself.
func measureReadCost(clock *monotonic.Clock) (time.Duration, error) {
	sw, err := monotonic.NewStopwatch()
	if err != nil {
		return 0, err
	}
	for i := 0; i < readCostSamples; i++ {
		if _, err := clock.Now(); err != nil {
			return 0, err
		}
	}
	elapsed, err := sw.Elapsed()
	if err != nil {
		return 0, err
	}
	return monotonic.AsDuration(elapsed / readCostSamples), nil
}
