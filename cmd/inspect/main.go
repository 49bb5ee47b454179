package main

import (
	"chat-relay/domain"
	"chat-relay/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// inspect prints the content of a relay data directory:
//
//	inspect -data ./data rooms
//	inspect -data ./data -room general -limit 20 messages
//	inspect -data ./data presence | counters | users
//	inspect -data ./data -dest ./backup snapshot
//	inspect -data ./data -src ./backup/db.bak restore
func main() {
	dataDir := flag.String("data", "./data", "Relay data directory")
	room := flag.String("room", "general", "Room for the messages view")
	limit := flag.Int("limit", 20, "Number of latest messages")
	dest := flag.String("dest", "./snapshots", "Destination directory for snapshot")
	src := flag.String("src", "", "Backup file for restore")
	noColor := flag.Bool("no-color", false, "Disable colors")
	flag.Parse()

	if *noColor {
		color.Disable()
	}
	view := lo.Ternary(flag.NArg() > 0, flag.Arg(0), "rooms")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var store *repositories.Store
	var err error
	if view == "restore" {
		store, err = repositories.Open(*dataDir, logger)
	} else {
		store, err = repositories.OpenReadOnly(*dataDir, logger)
	}
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer store.Close()

	if err = render(store, view, *room, *limit, *dest, *src); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
}

func render(store *repositories.Store, view, room string, limit int, dest, src string) error {
	switch view {
	case "rooms":
		rooms, err := store.ListRooms()
		if err != nil {
			return err
		}
		table := newTable("Room", "Last seq")
		for _, r := range rooms {
			table.Append([]string{r.Room, strconv.FormatUint(r.Seq, 10)})
		}
		title("Rooms", len(rooms))
		table.Render()
	case "messages":
		records, err := store.ScanMessages(room, nil, limit)
		if err != nil {
			return err
		}
		table := newTable("ID", "Seq", "Time", "Body")
		for _, rec := range records {
			table.Append([]string{
				rec.ID,
				strconv.FormatUint(rec.Seq, 10),
				time.UnixMilli(rec.ServerTs).UTC().Format(time.DateTime),
				truncate(string(rec.Body), 80),
			})
		}
		title("Messages in "+room, len(records))
		table.Render()
	case "presence":
		entries, err := store.ListPresence()
		if err != nil {
			return err
		}
		now := time.Now().Unix()
		table := newTable("User", "Last seen", "Idle")
		for _, entry := range entries {
			table.Append([]string{
				entry.UserID,
				time.Unix(entry.LastSeen, 0).UTC().Format(time.DateTime),
				idle(entry, now),
			})
		}
		title("Online users", len(entries))
		table.Render()
	case "counters":
		counters, err := store.ListRateCounters()
		if err != nil {
			return err
		}
		table := newTable("Key", "Allowed writes")
		for _, c := range counters {
			table.Append([]string{c.Key, strconv.FormatUint(c.Value, 10)})
		}
		title("Rate counters", len(counters))
		table.Render()
	case "users":
		users, err := store.ListUsers()
		if err != nil {
			return err
		}
		table := newTable("#", "Record")
		for i, user := range users {
			table.Append([]string{strconv.Itoa(i + 1), truncate(string(user), 100)})
		}
		title("Users", len(users))
		table.Render()
	case "snapshot":
		if err := store.Snapshot(dest); err != nil {
			return err
		}
		color.Success.Printf("Snapshot written to %s/%s\n", dest, repositories.SnapshotFileName)
	case "restore":
		if src == "" {
			return fmt.Errorf("restore needs -src")
		}
		if err := store.Restore(src); err != nil {
			return err
		}
		color.Success.Printf("Restored %s into %s\n", src, store.Base())
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	return nil
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func title(name string, count int) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf("  ====== %s (%d) ======", name, count)))
}

func idle(entry domain.PresenceEntry, now int64) string {
	d := time.Duration(now-entry.LastSeen) * time.Second
	if d > time.Minute {
		return color.FgYellow.Render(d.String())
	}
	return d.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
