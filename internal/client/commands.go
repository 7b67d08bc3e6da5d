package client

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-vaultage/internal/service"
	"github.com/MKhiriev/go-vaultage/models"
)

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, a *App, s *session, args []string) error
}

var commands = map[string]command{
	"list": {run: func(ctx context.Context, a *App, s *session, args []string) error {
		return s.do(func(v *service.Vault) error {
			return a.printEntries(v.AllEntries())
		})
	}},
	"find": {usage: "<term>...", minArgs: 1, run: func(ctx context.Context, a *App, s *session, args []string) error {
		return s.do(func(v *service.Vault) error {
			return a.printEntries(v.FindEntries(args...))
		})
	}},
	"weak": {run: func(ctx context.Context, a *App, s *session, args []string) error {
		return s.do(func(v *service.Vault) error {
			return a.printEntries(v.WeakPasswords(0))
		})
	}},
	"reused": {run: func(ctx context.Context, a *App, s *session, args []string) error {
		return s.do(func(v *service.Vault) error {
			return a.printEntries(v.EntriesWhichReusePasswords())
		})
	}},
	"add": {usage: "<title> <login> <password> [url]", minArgs: 3, run: addEntry},
	"rm":  {usage: "<id>", minArgs: 1, run: removeEntry},
	"passwd": {usage: "<new master password>", minArgs: 1, run: func(ctx context.Context, a *App, s *session, args []string) error {
		return s.do(func(v *service.Vault) error {
			if err := v.UpdateMasterPassword(ctx, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(a.out, "master password updated")
			return err
		})
	}},
	"watch": {run: watch},
}

func addEntry(ctx context.Context, a *App, s *session, args []string) error {
	attrs := models.VaultEntryAttrs{Title: args[0], Login: args[1], Password: args[2]}
	if len(args) > 3 {
		attrs.ItemURL = args[3]
	}

	return s.do(func(v *service.Vault) error {
		id, err := v.AddEntry(attrs)
		if err != nil {
			return err
		}
		if err = v.Save(ctx); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "added entry %s\n", id)
		return err
	})
}

func removeEntry(ctx context.Context, a *App, s *session, args []string) error {
	return s.do(func(v *service.Vault) error {
		if err := v.RemoveEntry(args[0]); err != nil {
			return err
		}
		if err := v.Save(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintf(a.out, "removed entry %s\n", args[0])
		return err
	})
}

// watch keeps the vault pulled until ctx is done.
func watch(ctx context.Context, a *App, s *session, args []string) error {
	job := service.NewClientSyncJob(s, a.logger)
	job.Start(ctx, a.cfg.Workers.SyncInterval)
	defer job.Stop()

	<-ctx.Done()

	return s.do(func(v *service.Vault) error {
		_, err := fmt.Fprintf(a.out, "stopped at revision %d\n", v.Revision())
		return err
	})
}

func (a *App) printEntries(entries []models.VaultEntry) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLOGIN\tURL\tSTRENGTH\tREUSED")
	for _, e := range entries {
		if e.Hidden {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Title, e.Login, e.ItemURL, e.Strength, strconv.Itoa(e.ReuseCount))
	}
	return w.Flush()
}
