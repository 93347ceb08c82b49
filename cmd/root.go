package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Greg8128/Stim/ctl"
)

// envPrefix is the capitalized prefix stimrecord's environment variables
// carry, e.g. STIMRECORD_FORMAT for the dump command's --format flag.
// Unlike featurebase, which switches its prefix between PILOSA and
// FEATUREBASE mid-rename depending on a "future.rename" flag, this is a
// single binary with a single name, so there's exactly one prefix and no
// rename flag to gate it on.
const envPrefix = "STIMRECORD"

// NewRootCommand returns the stimrecord command tree: the root plus its
// one subcommand, dump.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "stimrecord",
		Short: "stimrecord inspects and converts stabilizer measurement-record files.",
		Long: `stimrecord reads measurement-record streams in the 01, B8,
HITS, R8, and DETS encodings and converts them to 01 text, for use in
tests and bug reports. It understands only the record encodings
themselves; it does not simulate circuits.
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			return setAllConfig(v, cmd.Flags(), envPrefix)
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")

	rc.AddCommand(ctl.NewDumpCommand(stdin, stdout, stderr))

	rc.SetOutput(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults, and an environment-variable prefix.
// It then reads from the command line, the environment, and a config file
// (if specified), and applies the configuration in that priority order.
// Since each flag in the set contains a pointer to where its value should
// be stored, setAllConfig can directly modify the value of each config
// variable.
//
// setAllConfig looks for environment variables which are capitalized
// versions of the flag names with dashes replaced by underscores, and
// prefixed with prefix plus an underscore.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet, prefix string) error {
	// add cmd line flag def to viper
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := v.GetString("config")
	var flagErr error
	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	// add config file to viper
	if c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}

		for _, key := range v.AllKeys() {
			if _, ok := validTags[key]; !ok {
				return fmt.Errorf("invalid option %q in configuration file: valid options are %s", key, strings.Join(validFlagNames(validTags), ", "))
			}
		}
	}

	// set all values from viper
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}
		var value string
		if f.Value.Type() == "stringSlice" {
			// special handling is needed for stringSlice as v.GetString will
			// always return "" in the case that the value is an actual string
			// slice from a config file rather than a comma separated string
			// from a flag or env var.
			vss := v.GetStringSlice(f.Name)
			value = strings.Join(vss, ",")
		} else {
			value = v.GetString(f.Name)
		}

		if f.Changed {
			// If f.Changed is true, that means the value has already been set
			// by a flag, and we don't need to ask viper for it since the flag
			// is the highest priority. This works around a problem with string
			// slices where f.Value.Set(csvString) would cause the elements of
			// csvString to be appended to the existing value rather than
			// replacing it.
			return
		}
		flagErr = f.Value.Set(value)
	})
	return flagErr
}

// validFlagNames returns the keys of a flag-name set in sorted order, for
// building a readable "valid options are ..." message.
func validFlagNames(validTags map[string]bool) []string {
	names := make([]string, 0, len(validTags))
	for name := range validTags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
