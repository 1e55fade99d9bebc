/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vasilii314/kennel/client"
	"github.com/vasilii314/kennel/dog"
)

// dogsCmd groups the dog catalog commands
var dogsCmd = &cobra.Command{
	Use:   "dogs",
	Short: "Read and modify the dog catalog",
	Long: `Kennel dogs command.

The dogs subcommands talk to a running kennel server.`,
}

var dogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dogs, optionally filtered by kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		var kind *dog.Kind
		if raw, _ := cmd.Flags().GetString("kind"); raw != "" {
			k, err := dog.ParseKind(raw)
			if err != nil {
				return err
			}
			kind = &k
		}
		dogs, err := c.ListDogs(cmd.Context(), kind)
		if err != nil {
			return err
		}
		printDogs(cmd.OutOrStdout(), dogs...)
		return nil
	},
}

var dogsGetCmd = &cobra.Command{
	Use:   "get PK",
	Short: "Get a dog by pk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pk %q: %w", args[0], err)
		}
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		d, err := c.GetDog(cmd.Context(), pk)
		if err != nil {
			return err
		}
		printDogs(cmd.OutOrStdout(), d)
		return nil
	},
}

var dogsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dogFromFlags(cmd)
		if err != nil {
			return err
		}
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		created, err := c.CreateDog(cmd.Context(), d)
		if err != nil {
			return err
		}
		printDogs(cmd.OutOrStdout(), created)
		return nil
	},
}

var dogsUpdateCmd = &cobra.Command{
	Use:   "update PK",
	Short: "Replace the dog stored under PK",
	Long: `Replaces the whole record stored under PK.

Every field must be given; --pk must equal PK.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pk %q: %w", args[0], err)
		}
		d, err := dogFromFlags(cmd)
		if err != nil {
			return err
		}
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		replaced, err := c.UpdateDog(cmd.Context(), pk, d)
		if err != nil {
			return err
		}
		printDogs(cmd.OutOrStdout(), replaced)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dogsCmd)
	dogsCmd.PersistentFlags().StringP("server", "s", "localhost:8000", "Kennel server address")
	dogsCmd.AddCommand(dogsListCmd, dogsGetCmd, dogsCreateCmd, dogsUpdateCmd)
	dogsListCmd.Flags().StringP("kind", "k", "", "Only list dogs of this kind (terrier, bulldog or dalmatian)")
	for _, c := range []*cobra.Command{dogsCreateCmd, dogsUpdateCmd} {
		c.Flags().StringP("name", "n", "", "Dog name")
		c.Flags().Int("pk", 0, "Dog primary key")
		c.Flags().StringP("kind", "k", "", "Dog kind (terrier, bulldog or dalmatian)")
		c.MarkFlagRequired("name")
		c.MarkFlagRequired("pk")
		c.MarkFlagRequired("kind")
	}
}

func newClient(cmd *cobra.Command) (*client.Client, error) {
	server, _ := cmd.Flags().GetString("server")
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	return client.New(server, logger), nil
}

func dogFromFlags(cmd *cobra.Command) (dog.Dog, error) {
	name, _ := cmd.Flags().GetString("name")
	pk, _ := cmd.Flags().GetInt("pk")
	raw, _ := cmd.Flags().GetString("kind")
	kind, err := dog.ParseKind(raw)
	if err != nil {
		return dog.Dog{}, err
	}
	return dog.Dog{Name: name, PK: pk, Kind: kind}, nil
}

func printDogs(out io.Writer, dogs ...dog.Dog) {
	w := tabwriter.NewWriter(out, 0, 0, 5, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, "PK\tNAME\tKIND\t")
	for _, d := range dogs {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n", d.PK, d.Name, d.Kind)
	}
	w.Flush()
}
