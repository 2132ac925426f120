package mergef

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mergef/pkg/config"
	"github.com/arthur-debert/mergef/pkg/style"
	"github.com/arthur-debert/mergef/pkg/types"
)

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: MsgPatternsShort,
	}

	cmd.AddCommand(newPatternsListCmd())
	cmd.AddCommand(newPatternsAddCmd())
	cmd.AddCommand(newPatternsRemoveCmd())

	return cmd
}

func newPatternsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return &exitError{code: ExitHard, err: err}
			}

			for _, p := range cat.List() {
				name := p.Name
				if style.StdoutIsTerminal() {
					name = style.TitleStyle.Sprint(name)
				}
				cmd.Printf("%s (%s)\n", name, p.Source)
				if p.Description != "" {
					cmd.Printf("    %s\n", p.Description)
				}
				cmd.Printf("    base: %s\n", p.Base)
				cmd.Printf("    target: %s\n", p.Target)
				if p.Example != "" {
					cmd.Printf("    example: %s\n", p.Example)
				}
			}
			return nil
		},
	}
}

func newPatternsAddCmd() *cobra.Command {
	var description, example string

	cmd := &cobra.Command{
		Use:   "add NAME BASE_PATTERN TARGET_PATTERN",
		Short: MsgAddShort,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewStore()
			err := store.AddPattern(types.Pattern{
				Name:        args[0],
				Base:        args[1],
				Target:      args[2],
				Description: description,
				Example:     example,
				Source:      types.SourceUser,
			})
			if err != nil {
				return &exitError{code: ExitHard, err: err}
			}
			cmd.Printf(MsgPatternAdded, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", MsgFlagDesc)
	cmd.Flags().StringVar(&example, "example", "", MsgFlagExample)

	return cmd
}

func newPatternsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: MsgRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewStore()
			if err := store.RemovePattern(args[0]); err != nil {
				return &exitError{code: ExitHard, err: err}
			}
			cmd.Printf(MsgPatternRemoved, args[0])
			return nil
		},
	}
}
