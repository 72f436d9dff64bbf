package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/leodido/structcli"
	"github.com/sdrkit/sdrfeatures"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Build metadata injected via ldflags. When built without ldflags these
// remain at their zero values and the version command omits them.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := &cobra.Command{
		Use:   "sdrfeatures",
		Short: "Runtime detection of SDR hardware connectors and decoders",
		Long: `sdrfeatures probes the host for the optional software an SDR receiver
depends on: hardware connectors, digimode decoders, DSP libraries, and the
codec server. Use it to see which receiver features this machine can run,
and what is missing for the ones it cannot.`,
		SilenceUsage: true,
	}

	root.AddCommand(reportCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(failedCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDetector() (*sdrfeatures.Detector, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return sdrfeatures.New(cfg.detectorOptions(newLogger(cfg))...), nil
}

// ReportOptions defines flags for the report subcommand.
type ReportOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ReportOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func reportCmd() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Probe every feature and display the full report",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := newDetector()
			if err != nil {
				return err
			}

			report := d.Report()
			if opts.JSON {
				return printJSON(report)
			}
			fmt.Print(report)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// CheckOptions defines flags for the check subcommand.
type CheckOptions struct {
	Feature featureList `flag:"feature" flagshort:"f" flagdescr:"Features to check (repeat or comma-separate)" flagrequired:"true" flagcustom:"true"`
	JSON    bool        `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *CheckOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *CheckOptions) DefineFeature(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*featureList)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *CheckOptions) DecodeFeature(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return parseFeatureList(s), nil
}

func checkCmd() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether specific features are available",
		Long:  checkLongDescription(),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(opts.Feature) == 0 {
				return fmt.Errorf("no features specified")
			}

			d, err := newDetector()
			if err != nil {
				return err
			}

			type checkResult struct {
				Available bool     `json:"available"`
				Missing   []string `json:"missing,omitempty"`
			}
			results := make(map[string]checkResult, len(opts.Feature))
			allAvailable := true
			for _, feature := range opts.Feature {
				available, err := d.IsAvailable(feature)
				if err != nil {
					var ufe *sdrfeatures.UnknownFeatureError
					if errors.As(err, &ufe) {
						return fmt.Errorf("unknown feature %q (available: %s)",
							ufe.Name, strings.Join(sdrfeatures.FeatureNames(), ", "))
					}
					return err
				}

				result := checkResult{Available: available}
				if !available {
					allAvailable = false
					result.Missing, _ = d.FailedRequirements(feature)
				}
				results[feature] = result
			}

			if opts.JSON {
				if err := printJSON(results); err != nil {
					return err
				}
			} else {
				for _, feature := range opts.Feature {
					result := results[feature]
					if result.Available {
						fmt.Printf("OK: %s\n", feature)
						continue
					}
					fmt.Printf("FAIL: %s (missing: %s)\n", feature, strings.Join(result.Missing, ", "))
				}
			}

			if !allAvailable {
				os.Exit(1)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// FailedOptions defines flags for the failed subcommand.
type FailedOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *FailedOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func failedCmd() *cobra.Command {
	opts := &FailedOptions{}

	cmd := &cobra.Command{
		Use:   "failed <feature>",
		Short: "List the unsatisfied requirements of a feature",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			d, err := newDetector()
			if err != nil {
				return err
			}

			failed, err := d.FailedRequirements(args[0])
			if err != nil {
				var ufe *sdrfeatures.UnknownFeatureError
				if errors.As(err, &ufe) {
					return fmt.Errorf("unknown feature %q (available: %s)",
						ufe.Name, strings.Join(sdrfeatures.FeatureNames(), ", "))
				}
				return err
			}

			if opts.JSON {
				return printJSON(failed)
			}
			if len(failed) == 0 {
				fmt.Println("all requirements satisfied")
				return nil
			}
			for _, name := range failed {
				fmt.Println(name)
			}
			os.Exit(1)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the tool version",
		Run: func(c *cobra.Command, args []string) {
			if version == "" {
				fmt.Println("sdrfeatures (dev)")
				return
			}
			fmt.Printf("sdrfeatures %s", version)
			if commit != "" {
				fmt.Printf(" (%s)", commit)
			}
			if date != "" {
				fmt.Printf(" built %s", date)
			}
			fmt.Println()
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func checkLongDescription() string {
	return fmt.Sprintf(`Check that this host satisfies the requirements of the given features.
Exits with code 0 if all features are available, 1 if any are missing.

Available features:
%s`, formatWrappedList(sdrfeatures.FeatureNames(), "  ", 80))
}

func formatWrappedList(items []string, indent string, maxWidth int) string {
	if len(items) == 0 {
		return indent + "(none)"
	}

	lines := make([]string, 0, len(items))
	line := indent
	for i, item := range items {
		token := item
		if i < len(items)-1 {
			token += ", "
		}

		if len(line)+len(token) > maxWidth && line != indent {
			lines = append(lines, strings.TrimRight(line, " "))
			line = indent + token
			continue
		}

		line += token
	}

	lines = append(lines, strings.TrimRight(line, " "))
	return strings.Join(lines, "\n")
}

// featureList collects feature names from repeated or comma-separated
// --feature flags.
type featureList []string

func (f *featureList) String() string {
	return strings.Join(*f, ",")
}

func (f *featureList) Set(input string) error {
	*f = append(*f, parseFeatureList(input)...)
	return nil
}

func (f *featureList) Type() string {
	return "feature"
}

func parseFeatureList(input string) featureList {
	parts := strings.Split(input, ",")
	features := make(featureList, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		features = append(features, name)
	}
	return features
}
