// Package notifications stores and delivers the transient messages shown to
// a browser session: download results, copy confirmations and form errors.
//
// A Manager writes every notification to a Storage, then hands it to a
// Deliverer. The default ContextDeliverer forwards to the deliverer bound to
// the request context with WithDeliverer, which is how a notification raised
// while handling a request reaches that request's open event stream.
// Notifications carry an expiry; expired ones are skipped by List and
// removed by Purge.
//
//	mgr := notifications.NewManager(nil, nil)
//	ctx = notifications.WithDeliverer(ctx, chrome)
//	mgr.Toast(ctx, sessionID, notifications.TypeSuccess, "Download Successful",
//		"CSV file downloaded successfully!", notifications.ToastTTL)
package notifications
