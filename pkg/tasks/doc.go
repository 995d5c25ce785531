// Package tasks runs background loops alongside a bot's event handlers.
//
// A [Runner] owns two kinds of tasks: interval loops that fire every
// fixed duration, and cron schedules for wall-clock work. All tasks
// share one lifecycle: they start together when the bot is ready and
// stop together during shutdown.
//
// # Registering tasks
//
// Tasks are registered at construction through options:
//
//	runner, err := tasks.NewRunner(
//	    tasks.WithInterval("presence", 5*time.Minute, rotatePresence),
//	    tasks.WithCron("daily_digest", "0 9 * * *", sendDigest),
//	    tasks.WithLogger(log),
//	)
//
// Cron expressions use the standard 5 fields (min hour day month
// weekday) and are validated inside [NewRunner].
//
// # Lifecycle
//
// [Runner.Start] launches every loop; interval tasks run their first
// iteration immediately. [Runner.Stop] cancels the shared context and
// waits for in-flight iterations up to its context deadline:
//
//	if err := runner.Start(ctx); err != nil { ... }
//	defer runner.Stop(shutdownCtx)
//
// A panicking or erroring iteration is logged and the loop keeps
// running; one bad tick never kills a task.
//
// [Runner.StartFunc] and [Runner.Shutdown] adapt the lifecycle to the
// bot's hook signatures.
package tasks
