package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mugendi/wraptimer/pkg/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches an interactive menu over the built-in demos and configuration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runInteractive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command) {
	fmt.Println("Wraptimer - Interactive Mode")
	fmt.Println("============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					if err := showConfigCmd.RunE(cmd, nil); err != nil {
						fmt.Printf("\nError: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Demos",
				Description: "Run the func and byline timing demos",
				Action: func() error {
					if err := demoCmd.RunE(cmd, nil); err != nil {
						fmt.Printf("\nError: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMenu("What would you like to do?", options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			Logger.Fatal(err)
		}

		fmt.Println()
	}
}
