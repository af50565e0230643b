package cmd

import (
	"github.com/spf13/cobra"

	"plume/config"
	"plume/models"
	"plume/web"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the showcase server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(root, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, overrides the config file")

	return cmd
}

func runServe(root *rootFlags, addr string) error {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Address = addr
	}
	if root.verbose {
		cfg.Verbose = true
	}

	if err := models.InitDB(cfg.DataDir); err != nil {
		return err
	}
	defer models.CloseDB()

	if err := models.InitJWT(); err != nil {
		return err
	}
	if cfg.Admin.Username != "" {
		if err := models.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return err
		}
	}

	srv := web.NewServer(cfg)
	return web.Run(srv, cfg)
}
