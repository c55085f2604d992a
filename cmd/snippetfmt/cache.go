package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xonecas/snippetfmt/internal/config"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Clear the render cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the render cache database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			path := cfg.Cache.SQLitePath
			if path == "" {
				dir, err := config.DataDir()
				if err != nil {
					return err
				}
				path = dir + "/rendercache.db"
			}
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("cache clear: %w", err)
			}
			fmt.Println("render cache cleared")
			return nil
		},
	})
	return cmd
}
