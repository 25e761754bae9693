package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/subcommands"
	"github.com/gorilla/websocket"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh market prices for one item or the whole inventory" }
func (*refreshCmd) Usage() string {
	return `client refresh [<id>]

  With an id: refreshes that single item and prints it.
  Without: starts a bulk run and streams per-item progress live. Lookups
  are paced server-side, so large inventories take a while.
`
}

func (*refreshCmd) SetFlags(f *flag.FlagSet) {}

func (p *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fail(fmt.Errorf("refresh expects at most one item id"))
		return subcommands.ExitUsageError
	}

	if f.NArg() == 1 {
		return p.refreshOne(ctx, f.Arg(0))
	}
	return p.refreshAll(ctx)
}

func (p *refreshCmd) refreshOne(ctx context.Context, arg string) subcommands.ExitStatus {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fail(fmt.Errorf("item id must be a positive integer, got %q", arg))
		return subcommands.ExitUsageError
	}

	var data itemData
	if err := newAPIClient().do(ctx, http.MethodPost, fmt.Sprintf("/update/%d", id), nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(itemMarkdown(data.Item))
	return subcommands.ExitSuccess
}

// Read deadlines for the progress stream. The first event arrives right
// away when there is anything to do; later events are paced server-side
// in seconds per lookup.
var (
	firstEventWait = 10 * time.Second
	nextEventWait  = 2 * time.Minute
)

// refreshAll connects the progress socket before kicking off the run, so no
// event is missed, then streams until the last record is reported. A run
// over an empty inventory emits no events at all, so silence on the socket
// is resolved against /update/status instead of being treated as a failure.
func (p *refreshCmd) refreshAll(ctx context.Context) subcommands.ExitStatus {
	target, err := wsURL("/ws/progress")
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		fail(fmt.Errorf("connecting progress socket: %w", err))
		return subcommands.ExitFailure
	}
	defer conn.Close()

	if err := newAPIClient().do(ctx, http.MethodPost, "/update", nil, nil); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Println("refresh started")

	wait := firstEventWait
	for {
		conn.SetReadDeadline(time.Now().Add(wait))
		wait = nextEventWait

		var ev progressEvent
		if err := conn.ReadJSON(&ev); err != nil {
			status, serr := fetchStatus(ctx)
			if serr == nil && status.Status != "running" {
				return printRunSummary(status)
			}
			fail(fmt.Errorf("progress stream closed: %w", err))
			return subcommands.ExitFailure
		}

		marker := "ok"
		if ev.Failed {
			marker = "FAILED"
		}
		fmt.Printf("[%d/%d] %-6s %s\n", ev.Progress, ev.TotalItems, marker, ev.Message)

		if ev.Progress >= ev.TotalItems {
			break
		}
	}

	status, err := fetchStatus(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return printRunSummary(status)
}

func fetchStatus(ctx context.Context) (statusData, error) {
	var status statusData
	err := newAPIClient().do(ctx, http.MethodGet, "/update/status", nil, &status)
	return status, err
}

func printRunSummary(status statusData) subcommands.ExitStatus {
	if status.LastRun == nil || status.LastRun.Total == 0 {
		fmt.Println("done: nothing to refresh")
		return subcommands.ExitSuccess
	}
	fmt.Printf("done: %d updated, %d failed of %d\n",
		status.LastRun.Succeeded, status.LastRun.Failed, status.LastRun.Total)
	return subcommands.ExitSuccess
}
