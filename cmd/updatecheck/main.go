// Command updatecheck checks crates.io for a newer version of a crate.
//
// Exit codes: 0 when already up to date, 10 when an update is available,
// 1 on any error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/git-pkgs/updatecheck"
)

const exitUpdateAvailable = 10

var (
	currentVersion string
	timeout        time.Duration
	cacheTTL       time.Duration
	cacheDir       string
	noCache        bool
	includePre     bool
	registryURL    string
	jsonOutput     bool
	noColor        bool
	configPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "updatecheck",
		Short: "Check crates.io for newer crate versions",
		Long:  "updatecheck queries the crates.io API for the newest published version of a crate and compares it against a version you supply, caching results to keep request volume down.",
	}

	checkCmd := &cobra.Command{
		Use:   "check <crate>|<purl>",
		Short: "Check a crate for an available update",
		Long: "Check whether a newer version of a crate has been published.\n\n" +
			"Accepts either a crate name together with --current, or a version PURL\n" +
			"like pkg:cargo/serde@1.0.0 that carries both.",
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringVarP(&currentVersion, "current", "c", "", "Currently installed version (required unless a purl is given)")
	checkCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Registry request timeout")
	checkCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 24*time.Hour, "How long cached results stay fresh")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Cache directory (default: platform cache dir)")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "Always query the registry")
	checkCmd.Flags().BoolVar(&includePre, "pre", false, "Report pre-release versions as updates")
	checkCmd.Flags().StringVar(&registryURL, "registry", "", "Registry base URL (default: crates.io)")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	checkCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	checkCmd.Flags().StringVar(&configPath, "config", "", "YAML config file with default settings")

	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	if configPath != "" {
		fileCfg, err := loadConfigFile(configPath)
		if err != nil {
			return err
		}
		applyConfigFile(cmd, fileCfg)
	}

	target := args[0]

	var update *updatecheck.UpdateInfo
	var err error
	var name, current string

	opts := buildOptions()

	if strings.HasPrefix(target, "pkg:") {
		update, err = updatecheck.CheckPURL(context.Background(), target, opts...)
		name, current = purlParts(target)
	} else {
		if currentVersion == "" {
			return fmt.Errorf("--current is required when checking by crate name")
		}
		name, current = target, currentVersion
		update, err = updatecheck.CheckContext(context.Background(),
			updatecheck.NewConfig(name, current, opts...))
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(name, current, update)
	}

	if update == nil {
		color.New(color.FgGreen).Fprintf(os.Stdout, "%s %s is up to date\n", name, current)
		return nil
	}

	color.New(color.FgYellow, color.Bold).Fprintf(os.Stdout,
		"update available: %s %s -> %s\n", name, update.Current, update.Latest)
	fmt.Println(updatecheck.ReleaseURL(name, update.Latest))
	os.Exit(exitUpdateAvailable)
	return nil
}

// buildOptions translates flag values into library options.
func buildOptions() []updatecheck.Option {
	opts := []updatecheck.Option{
		updatecheck.WithTimeout(timeout),
		updatecheck.WithCacheTTL(cacheTTL),
		updatecheck.WithPrerelease(includePre),
	}
	if noCache {
		opts = append(opts, updatecheck.WithCacheTTL(0))
	}
	if cacheDir != "" {
		opts = append(opts, updatecheck.WithCacheDir(cacheDir))
	}
	if registryURL != "" {
		opts = append(opts, updatecheck.WithBaseURL(registryURL))
	}
	return opts
}

// purlParts pulls name and version back out of a cargo purl for display.
func purlParts(purl string) (name, version string) {
	rest := strings.TrimPrefix(purl, "pkg:cargo/")
	if at := strings.LastIndexByte(rest, '@'); at >= 0 {
		return rest[:at], rest[at+1:]
	}
	return rest, ""
}

type checkResult struct {
	Package         string `json:"package"`
	Current         string `json:"current"`
	Latest          string `json:"latest,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
	ReleaseURL      string `json:"release_url,omitempty"`
}

func printJSON(name, current string, update *updatecheck.UpdateInfo) error {
	result := checkResult{
		Package: name,
		Current: current,
	}
	if update != nil {
		result.Latest = update.Latest
		result.UpdateAvailable = true
		result.ReleaseURL = updatecheck.ReleaseURL(name, update.Latest)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	if result.UpdateAvailable {
		os.Exit(exitUpdateAvailable)
	}
	return nil
}
