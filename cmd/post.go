/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/vasilii314/kennel/post"
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a timestamp post",
	Long: `Kennel post command.

Asks the server to append a new timestamp post and prints it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		p, err := c.CreatePost(cmd.Context())
		if err != nil {
			return err
		}
		printPosts(cmd.OutOrStdout(), time.Now(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().StringP("server", "s", "localhost:8000", "Kennel server address")
}

func printPosts(out io.Writer, now time.Time, posts ...post.Timestamp) {
	w := tabwriter.NewWriter(out, 0, 0, 5, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tCREATED\t")
	for _, p := range posts {
		created := fmt.Sprintf("%s ago", units.HumanDuration(now.Sub(time.Unix(p.Timestamp, 0))))
		fmt.Fprintf(w, "%d\t%d\t%s\t\n", p.ID, p.Timestamp, created)
	}
	w.Flush()
}
