// Package notify pushes run summaries to an external messaging channel.
//
// The only real implementation talks to the Telegram Bot API; a Noop
// implementation stands in when credentials are not configured, so callers
// never branch on "notifications enabled".
//
// Delivery is best-effort. The sync service reports a failed delivery in its
// log and moves on; a run never fails because Telegram was unreachable.
//
// # Usage
//
//	n := notify.New(cfg.Notify)
//	_ = n.Success(ctx, "sync finished: 2 campaigns, 0 errors")
package notify
