package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pthm/cked"
	"github.com/pthm/cked/lib/jsenc"
	"github.com/spf13/cobra"
)

var encodeStrict bool

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Print a configuration as a script literal",
	Long: `Encode prints the config section of the profile given with --profile,
or a bare YAML configuration read from file ("-" for stdin), as the object
literal passed to the editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := encodeSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return encodeConfig(cmd.OutOrStdout(), cfg, encodeStrict)
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeStrict, "strict", false, "Fail on values that cannot be encoded")
	rootCmd.AddCommand(encodeCmd)
}

func encodeSource(stdin io.Reader, args []string) (*cked.Config, error) {
	if len(args) == 0 {
		profile, err := loadProfile()
		if err != nil {
			return nil, err
		}
		return profile.Config, nil
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	return cked.ParseConfig(data)
}

func encodeConfig(w io.Writer, cfg *cked.Config, strict bool) error {
	out := cfg.Script()
	if strict {
		var err error
		if out, err = jsenc.Marshal(cfg.Value()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
