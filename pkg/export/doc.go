// Package export renders an application once, without a session or a
// browser client, and publishes the resulting static page.
//
// Export runs the application against a manual scheduler in sync mode, so
// the document is complete when the app returns. The page is then written
// through a Publisher: a local directory or an S3 bucket.
//
//	pub := export.NewDirPublisher("dist")
//	res, err := export.Export(ctx, app, pub, export.Options{Title: "Showcase"})
package export
