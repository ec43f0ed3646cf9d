package main

import (
	"chat-room/domain"
	"chat-room/internal"
	"chat-room/storage"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Prints the session record a client left in its store, without touching it.
func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	profile := flag.String("profile", config.Profile, "Session profile to inspect")
	flag.Parse()

	// BypassLockGuard allows reading while a client holds the lock.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	record, err := storage.NewSessionStore(db, slog.Default(), *profile).Load()
	if err != nil {
		log.Fatal(err)
	}
	if record == nil {
		fmt.Printf("No session stored for profile %q\n", *profile)
		return
	}
	renderRecord(os.Stdout, *record)
}

func renderRecord(w io.Writer, record domain.PersistedSessionRecord) {
	_, _ = fmt.Fprintf(w, "Room: %s\nNickname: %s\nMessages: %d\n\n", record.RoomID, record.Nickname, len(record.Transcript))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Origin", "Nickname", "Content"})
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

	for i, message := range record.Transcript {
		table.Append([]string{
			strconv.Itoa(i + 1),
			message.Origin.String(),
			message.SenderNickname,
			message.Content,
		})
	}
	table.Render()
}
