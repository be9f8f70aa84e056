package commands

import (
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/spf13/cobra"
)

// LayoutCmd prints the hexagonal chord map
var LayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Generate the hexagonal chord map",
	Long: `Generate the root node and the six rings around it:
diatonic, extensions, borrowed, substitutions, circle-fifths and chromatic.
Coordinates put 0° at the top and run clockwise.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

// ScaleCmd prints the current key's scale and diatonic triads
var ScaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show a key's scale and diatonic triads",
	Args:  cobra.NoArgs,
	RunE:  runScale,
}

// CircleCmd prints the circle of fifths
var CircleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Show the circle of fifths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOutput(cmd.OutOrStdout(), models.NewCircleOfFifthsResponse())
	},
}

func runLayout(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), models.NewLayoutResponse(key))
}

func runScale(cmd *cobra.Command, args []string) error {
	key, err := currentKey()
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), models.NewKeyResponse(key))
}
