package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csheet/state"
	"csheet/store"
)

// List prints call sheets kept in the snapshot store.
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	s, err := env.Store()
	if err != nil {
		return err
	}
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	log.Debug("Listing stored call sheets", zap.Int("count", len(entries)))

	var out io.Writer = os.Stdout
	if w := cmd.Root().Writer; w != nil {
		out = w
	}
	return writeEntries(out, entries)
}

// writeEntries prints entries as table in natural order of their IDs.
func writeEntries(out io.Writer, entries []store.Entry) error {
	slices.SortFunc(entries, func(a, b store.Entry) int {
		switch {
		case natural.Less(a.ID, b.ID):
			return -1
		case natural.Less(b.ID, a.ID):
			return 1
		}
		return 0
	})

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREV\tDATE\tTITLE\tPROJECT\tIMPORTED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", e.ID, e.Revision, e.Day, e.Title, e.Project, e.Imported.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
