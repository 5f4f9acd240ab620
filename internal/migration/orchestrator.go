// Package migration implements the operator-invoked legacy data import: run
// schema migrations, execute the legacy SQL dump, and report row counts. It is
// a manual, at-most-once procedure with no partial-state rollback.
package migration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/config"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAborted = errors.New("migration aborted by operator")

// SchemaMigrator applies schema migrations. Fresh mode rolls everything back
// before re-applying.
type SchemaMigrator interface {
	Migrate(ctx context.Context, fresh bool) error
}

// Seeder executes the legacy data dump and post-import fixups.
type Seeder interface {
	Seed(ctx context.Context) error
}

// StatsCollector reports the post-import row counts.
type StatsCollector interface {
	Counts(ctx context.Context) (*repository.DirectoryCounts, error)
}

// ConfirmPrompter asks the operator a yes/no question.
type ConfirmPrompter interface {
	Confirm(question string) (bool, error)
}

type Options struct {
	// Fresh rolls back all schema objects before migrating.
	Fresh bool
	// Force bypasses the production confirmation.
	Force bool
}

type Orchestrator struct {
	log      *logrus.Logger
	cfg      *config.Config
	migrator SchemaMigrator
	seeder   Seeder
	stats    StatsCollector
	prompter ConfirmPrompter
	out      io.Writer
}

func NewOrchestrator(
	log *logrus.Logger,
	cfg *config.Config,
	migrator SchemaMigrator,
	seeder Seeder,
	stats StatsCollector,
	prompter ConfirmPrompter,
	out io.Writer,
) *Orchestrator {
	return &Orchestrator{
		log:      log,
		cfg:      cfg,
		migrator: migrator,
		seeder:   seeder,
		stats:    stats,
		prompter: prompter,
		out:      out,
	}
}

// Run executes the import end to end. All preconditions are checked before
// any destructive step.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	if _, err := os.Stat(o.cfg.Seed.DumpPath); err != nil {
		return fmt.Errorf("legacy dump file not found at %s: nothing was changed", o.cfg.Seed.DumpPath)
	}

	if o.cfg.App.IsProduction() && !opts.Force {
		ok, err := o.confirmTwice("You are running against a PRODUCTION environment. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	if opts.Fresh {
		ok, err := o.confirmTwice("--fresh will DROP and recreate all schema objects. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	start := time.Now()

	fmt.Fprintln(o.out, "Running schema migrations...")
	if err := o.migrator.Migrate(ctx, opts.Fresh); err != nil {
		return fmt.Errorf("schema migration failed: %w (see %s)", err, o.cfg.App.LogPath)
	}

	fmt.Fprintln(o.out, "Importing legacy data...")
	if err := o.seeder.Seed(ctx); err != nil {
		return fmt.Errorf("data seeding failed: %w (see %s)", err, o.cfg.App.LogPath)
	}

	elapsed := time.Since(start)

	// Counts are best effort: a failed count query after a successful import
	// is a warning, not a failure.
	counts, err := o.stats.Counts(ctx)
	if err != nil {
		o.log.Warnf("Failed to collect post-import counts: %+v", err)
		fmt.Fprintln(o.out, "Warning: migration succeeded but row counts could not be collected")
	} else {
		o.printCounts(counts)
	}

	fmt.Fprintf(o.out, "\nLegacy data migration completed in %.1fs\n", elapsed.Seconds())
	fmt.Fprintf(o.out, "Super admin login: %s (default password from SEED_ADMIN_PASSWORD)\n", o.cfg.Seed.AdminEmail)
	fmt.Fprintln(o.out, "Imported doctor accounts use the shared default password; rotation is required on first login.")
	return nil
}

// confirmTwice requires the same answer twice before a destructive step.
func (o *Orchestrator) confirmTwice(question string) (bool, error) {
	ok, err := o.prompter.Confirm(question)
	if err != nil || !ok {
		return false, err
	}
	return o.prompter.Confirm("Are you sure? This cannot be undone.")
}

func (o *Orchestrator) printCounts(counts *repository.DirectoryCounts) {
	fmt.Fprintln(o.out, "\nImported rows:")
	fmt.Fprintf(o.out, "  Cities:          %d\n", counts.Cities)
	fmt.Fprintf(o.out, "  Specialties:     %d\n", counts.Specialties)
	fmt.Fprintf(o.out, "  Doctor profiles: %d\n", counts.DoctorProfiles)
	fmt.Fprintf(o.out, "  Doctor users:    %d\n", counts.DoctorUsers)
	fmt.Fprintf(o.out, "  Working hours:   %d\n", counts.WorkingHours)
	fmt.Fprintf(o.out, "  Search tags:     %d\n", counts.SearchTags)
}
