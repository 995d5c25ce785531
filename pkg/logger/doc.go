// Package logger builds the bot's slog logger from the log section of the
// configuration.
//
// The console sink renders one line per record from the configurable
// %{...} template, so operators shape the output without recompiling:
//
//	[2026-03-01 12:04:05] [INFO] cordial: connected to the gateway shard=0
//
// Record attributes follow the formatted line as key=value pairs. The same
// renderer that fills user-facing messages fills the line template, so an
// unknown placeholder stays visible instead of silently vanishing.
//
// # Sinks
//
// [New] wires up to three sinks from one Config: the console, an append
// file when log.file is set, and Sentry when log.sentry_dsn is set. Error
// records become Sentry issues; warnings ride along as searchable logs. A
// DSN that fails to initialize logs a warning and is skipped, so a broken
// reporting backend never prevents startup.
//
//	log, closeLog, err := logger.New(logger.Config{
//		Level:     cfg.Log().Level,
//		Format:    cfg.Log().Format,
//		File:      cfg.Log().File,
//		SentryDSN: cfg.Log().SentryDSN,
//	})
//	if err != nil {
//		return err
//	}
//	defer closeLog(context.Background())
//
// The close function flushes Sentry and closes the file sink; register it
// as a shutdown hook.
//
// # Context extractors
//
// A [ContextExtractor] pulls one attribute out of a context on every
// record. The bot installs extractors for the active command, guild and
// incident id, so handler code logs plainly and the event identity still
// lands on every line:
//
//	log := logger.NewNope()
//	handler := logger.Decorate(custom, extractors...)
//
// [Decorate] works with any slog.Handler, not only the built-in sinks.
package logger
