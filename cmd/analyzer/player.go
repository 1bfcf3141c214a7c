package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"moveAnalyzer/internal/config"
	"moveAnalyzer/internal/model"
	"moveAnalyzer/internal/report"
)

func runPlayer(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	meta, err := newArchiveClient(cfg).FetchPlayerMeta(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.RenderPlayer(playerFields(meta), report.ParseMode(cfg.Format)))
	return nil
}

func playerFields(meta model.PlayerMeta) [][2]string {
	fields := [][2]string{
		{"Username", meta.Username},
		{"Player ID", strconv.FormatInt(meta.PlayerID, 10)},
	}
	optional := [][2]string{
		{"Name", meta.Name},
		{"Title", meta.Title},
		{"Status", meta.Status},
		{"League", meta.League},
		{"Profile", meta.URL},
	}
	for _, f := range optional {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	fields = append(fields, [2]string{"Followers", strconv.Itoa(meta.Followers)})
	if meta.Joined > 0 {
		fields = append(fields, [2]string{"Joined", time.Unix(meta.Joined, 0).Format(model.DateLayout)})
	}
	if meta.LastOnline > 0 {
		fields = append(fields, [2]string{"Last online", time.Unix(meta.LastOnline, 0).Format(model.DateLayout)})
	}
	return fields
}
