package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/llm"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of researchdesk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  go:            %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(cmd.OutOrStdout(), "  default model: %s\n", llm.DefaultModel)
			fmt.Fprintf(cmd.OutOrStdout(), "  endpoint:      <proxy_url>%s\n", llm.CompletionsPath)
		}
	},
}

// versionString falls back to the module version and VCS revision recorded
// by `go install` when no ldflags were given.
func versionString() string {
	version, commit := Version, Commit
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && commit == "" && len(s.Value) >= 7 {
				commit = s.Value[:7]
			}
		}
	}
	if commit != "" {
		return fmt.Sprintf("researchdesk %s (%s)", version, commit)
	}
	return "researchdesk " + version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
