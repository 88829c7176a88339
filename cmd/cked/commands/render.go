package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pthm/cked"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	method string
	name   string
	class  string
	value  string
	inline bool
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the markup for one editor placement",
	Long: `Render prints the library include, the textarea (for insert) and the
creation script for one editor. Methods: replace, replaceAll, inline,
inlineAll, insert.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}
		return renderEditor(cmd.Context(), cmd.OutOrStdout(), profile, renderOpts)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.method, "method", "m", "replace", "Creation method")
	renderCmd.Flags().StringVarP(&renderOpts.name, "name", "n", "", "Element name or id")
	renderCmd.Flags().StringVar(&renderOpts.class, "class", "", "Textarea class for replaceAll")
	renderCmd.Flags().StringVar(&renderOpts.value, "value", "", "Initial textarea content for insert")
	renderCmd.Flags().BoolVar(&renderOpts.inline, "inline", false, "Create an inline editor for insert")
	rootCmd.AddCommand(renderCmd)
}

func renderEditor(ctx context.Context, w io.Writer, profile *cked.Profile, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	method, err := cked.ParseMethod(opts.method)
	if err != nil {
		return err
	}

	name := opts.name
	if method == cked.MethodReplaceAll {
		name = opts.class
	}
	editor, err := cked.New(method, name)
	if err != nil {
		return err
	}
	if method == cked.MethodInsert {
		editor.Value(opts.value)
		if opts.inline {
			editor.AsInline()
		}
	}
	profile.Apply(editor)

	out, err := editor.HTML(cked.WithPage(ctx, profile.Page()))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
