package grc

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
)

// Flags holds CLI flag names for conversion configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	TargetAcVersion      string
	IgnoredResourceTypes string
	XLIFFChild           string
	XLIFFParent          string
}

// Config holds CLI flag values that parameterize a conversion run.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.IgnoredResourceTypeList] to obtain
// the parsed ignore set for [Convert].
type Config struct {
	Flags Flags

	TargetAcVersion      int
	IgnoredResourceTypes string
	XLIFFChild           string
	XLIFFParent          string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		TargetAcVersion:      "target-ac-version",
		IgnoredResourceTypes: "ignore",
		XLIFFChild:           "xliff",
		XLIFFParent:          "xliff-parent",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.TargetAcVersion, c.Flags.TargetAcVersion, 0,
		"target Archicad version (required; flips bevel token mapping at version 29)")
	flags.StringVar(&c.IgnoredResourceTypes, c.Flags.IgnoredResourceTypes, "",
		"comma-separated list of top-level resource tags to skip")
	flags.StringVar(&c.XLIFFChild, c.Flags.XLIFFChild, "",
		"path to an XLIFF 1.2 translation file")
	flags.StringVar(&c.XLIFFParent, c.Flags.XLIFFParent, "",
		"path to a parent XLIFF 1.2 translation file, overridden by --xliff on id collision")
}

// RegisterCompletions registers shell completions for conversion flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	resourceTags := []string{
		"ACNF", "ACP0", "CMND", "DATA", "DHLP", "FILE", "FTGP", "FTYP",
		"GALR", "GCSR", "GDLG", "GICN", "MDID", "STRS", "TEXT",
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.IgnoredResourceTypes,
		cobra.FixedCompletions(resourceTags, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.IgnoredResourceTypes, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	if err := cmd.RegisterFlagCompletionFunc(c.Flags.TargetAcVersion, noFileComp); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.TargetAcVersion, err)
	}

	return nil
}

// Validate checks that required flags were supplied.
func (c *Config) Validate() error {
	if c.TargetAcVersion == 0 {
		return fmt.Errorf("%w: --%s is required", ErrInvalidOption, c.Flags.TargetAcVersion)
	}

	return nil
}

// IgnoredResourceTypeList parses the comma-separated --ignore value.
func (c *Config) IgnoredResourceTypeList() []string {
	if c.IgnoredResourceTypes == "" {
		return nil
	}

	parts := strings.Split(c.IgnoredResourceTypes, ",")
	list := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		list = append(list, p)
	}

	return list
}

// UnknownIgnoredResourceTypes peeks raw into a document's top-level keys
// via gjson, without a full decode, and returns the subset of ignored that
// name no top-level tag present in data -- a cheap sanity check ahead of
// the full AST walk, so a misspelled --ignore value can be reported before
// the (more expensive) decode-and-convert pipeline runs.
func UnknownIgnoredResourceTypes(data []byte, ignored []string) []string {
	if len(ignored) == 0 || !gjson.ValidBytes(data) {
		return nil
	}

	var unknown []string

	for _, tag := range ignored {
		if !gjson.GetBytes(data, gjson.Escape(tag)).Exists() {
			unknown = append(unknown, tag)
		}
	}

	return unknown
}
