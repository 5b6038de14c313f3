package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pulselog/internal/client"
	"github.com/pulselog/internal/config"
	"github.com/pulselog/internal/ui"
)

const usage = `pulselog - personal fitness & wellness tracker

Usage:
  pulselog list    show logged activities, newest first
  pulselog add     log a new activity
  pulselog pulse   record today's wellness metrics
  pulselog chart   show the 7-day wellness trend

Set PULSELOG_SERVER to talk to a running server; without it records are
kept in a local database (PULSELOG_DB_PATH, default ~/.pulselog).
`

func main() {
	cfg := config.LoadClient()

	svc, err := client.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Notice(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
	defer svc.Close()

	cmd := "list"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()

	var runErr error
	switch cmd {
	case "list":
		runErr = runList(ctx, svc)
	case "add":
		runErr = runAdd(ctx, svc)
	case "pulse":
		runErr = runPulse(ctx, svc)
	case "chart":
		runErr = runChart(ctx, svc)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// 提交失败只提示，不重试，也不破坏已有展示
	if runErr != nil {
		fmt.Fprintln(os.Stderr, ui.Notice(fmt.Sprintf("error: %v", runErr)))
		os.Exit(1)
	}
}

func runList(ctx context.Context, svc client.DataService) error {
	activities, err := svc.ListActivities(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderActivityList(activities))
	return nil
}

func runAdd(ctx context.Context, svc client.DataService) error {
	input, err := ui.ActivityForm()
	if err != nil {
		return err
	}

	if _, err := svc.CreateActivity(ctx, input); err != nil {
		return err
	}

	// 提交成功后重新拉取并重绘列表
	return runList(ctx, svc)
}

func runPulse(ctx context.Context, svc client.DataService) error {
	input, err := ui.WellnessForm()
	if err != nil {
		return err
	}

	if err := svc.UpsertWellness(ctx, input); err != nil {
		return err
	}

	fmt.Println(ui.Confirmation("Daily pulse saved!"))
	return runChart(ctx, svc)
}

func runChart(ctx context.Context, svc client.DataService) error {
	entries, err := svc.ListWellness(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderWellnessChart(entries))
	return nil
}
