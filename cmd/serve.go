/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vasilii314/kennel/api"
	"github.com/vasilii314/kennel/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the kennel HTTP API.",
	Long: `Kennel serve command.

Seeds the dog catalog and the post log, then serves:
- GET    /             empty object
- POST   /post         create a timestamp post
- GET    /dog          list dogs, optionally ?kind=terrier|bulldog|dalmatian
- POST   /dog          create a dog
- GET    /dog/{pk}     get a dog
- PATCH  /dog/{pk}     replace a dog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		dogs := store.NewInMemoryDogStore(logger, store.SeedDogs()...)
		posts := store.NewInMemoryPostStore(logger, store.SeedPosts())
		logger.Info("seeded stores", zap.Int("dogs", dogs.Count()), zap.Int("posts", posts.Count()))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.New(host, port, dogs, posts, logger).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "H", "localhost", "Hostname or IP address")
	serveCmd.Flags().IntP("port", "p", 8000, "Port on which to listen")
}
